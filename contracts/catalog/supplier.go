package catalog

// DefaultSupplierType is applied when a supplier is saved without a type
const DefaultSupplierType = "official"

// SupplierRequest is the create/update payload for a supplier.
// Status is optional on update and defaults to active on create.
type SupplierRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=255"`
	Code   string `json:"code" validate:"required,min=1,max=50"`
	Type   string `json:"type" validate:"omitempty,max=50"`
	Status *bool  `json:"status,omitempty"`
}

// SupplierResponse represents a supplier
type SupplierResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Status bool   `json:"status"`
}

// SupplierProductRequest is the create/update payload for a supplier product
type SupplierProductRequest struct {
	SupplierID        string `json:"supplier_id" validate:"required"`
	SupplierProductID string `json:"supplier_product_id" validate:"required,max=100"`
	Name              string `json:"name" validate:"required,min=1,max=255"`
	Denom             int64  `json:"denom" validate:"gte=0"`
	CostPrice         int64  `json:"cost_price" validate:"gte=0"`
	Price             int64  `json:"price" validate:"gte=0"`
	Status            *bool  `json:"status,omitempty"`
}

// SupplierProductResponse represents a supplier product. SupplierProductID is
// the supplier's own catalog key, not the internal ID.
type SupplierProductResponse struct {
	ID                string `json:"id"`
	SupplierID        string `json:"supplier_id"`
	SupplierProductID string `json:"supplier_product_id"`
	Name              string `json:"name"`
	Denom             int64  `json:"denom"`
	CostPrice         int64  `json:"cost_price"`
	Price             int64  `json:"price"`
	Status            bool   `json:"status"`
}
