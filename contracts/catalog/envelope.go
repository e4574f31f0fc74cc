package catalog

// Envelope is the success shape of every wrapped catalog response
type Envelope[T any] struct {
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      T      `json:"data"`
}

// DashboardSummary holds the counts shown to admins on the dashboard
type DashboardSummary struct {
	Products  int `json:"products"`
	Suppliers int `json:"suppliers"`
	Recipes   int `json:"recipes"`
}
