package catalog

// APIKeyHeader carries the seller key on POST /seller/order
const APIKeyHeader = "X-API-KEY"

// OrderRequest is a seller order submission. RefID is the caller's
// idempotency token.
type OrderRequest struct {
	SupplierID  string `json:"supplier_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Destination string `json:"destination" validate:"required,max=100"`
	RefID       string `json:"ref_id" validate:"required,max=100"`
}

// OrderResponse is returned unwrapped from POST /seller/order
type OrderResponse struct {
	TrxID        string `json:"trx_id"`
	Product      string `json:"product"`
	Status       string `json:"status"`
	QuantityLoop int    `json:"quantity_loop"`
}

// OrderCreatedEvent is published after a seller order is stored
type OrderCreatedEvent struct {
	TrxID        string `json:"trx_id"`
	RefID        string `json:"ref_id"`
	SupplierID   string `json:"supplier_id"`
	ProductID    string `json:"product_id"`
	Destination  string `json:"destination"`
	QuantityLoop int    `json:"quantity_loop"`
	Status       string `json:"status"`
	Seller       string `json:"seller"`
	CreatedAt    string `json:"created_at"`
}
