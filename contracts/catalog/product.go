package catalog

// ProductRequest is the create/update payload for a product
type ProductRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Denom      int64  `json:"denom" validate:"gte=0"`
	Price      int64  `json:"price" validate:"gte=0"`
	Qty        int    `json:"qty" validate:"gte=0"`
	Status     *bool  `json:"status,omitempty"`
}

// ProductResponse represents a sellable product
type ProductResponse struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplier_id"`
	Name       string `json:"name"`
	Denom      int64  `json:"denom"`
	Price      int64  `json:"price"`
	Qty        int    `json:"qty"`
	Status     bool   `json:"status"`
}
