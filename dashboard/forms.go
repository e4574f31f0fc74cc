package dashboard

import (
	"strconv"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
)

// FormNumber is a numeric form field that may arrive as a JSON number or
// as text. Empty means zero.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	return (*Quantity)(n).UnmarshalJSON(data)
}

func (n FormNumber) int64(field string) (int64, error) {
	text := strings.TrimSpace(string(n))
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "Must be a whole number"}
	}
	return v, nil
}

// formStatus converts the "true"/"false" select value. Empty leaves the
// status to the catalog default.
func formStatus(text string) (*bool, error) {
	if text == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(text)
	if err != nil {
		return nil, &ValidationError{Field: "status", Message: "Status must be true or false"}
	}
	return &v, nil
}

// SupplierForm is the supplier modal
type SupplierForm struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Request converts the form, defaulting the type to official
func (f SupplierForm) Request() (catalog.SupplierRequest, error) {
	status, err := formStatus(f.Status)
	if err != nil {
		return catalog.SupplierRequest{}, err
	}
	req := catalog.SupplierRequest{
		Name:   strings.TrimSpace(f.Name),
		Code:   strings.TrimSpace(f.Code),
		Type:   strings.TrimSpace(f.Type),
		Status: status,
	}
	if req.Type == "" {
		req.Type = catalog.DefaultSupplierType
	}
	return req, check(req)
}

// SupplierProductForm is the supplier product modal
type SupplierProductForm struct {
	SupplierID        string     `json:"supplier_id"`
	SupplierProductID string     `json:"supplier_product_id"`
	Name              string     `json:"name"`
	Denom             FormNumber `json:"denom"`
	CostPrice         FormNumber `json:"cost_price"`
	Price             FormNumber `json:"price"`
	Status            string     `json:"status"`
}

func (f SupplierProductForm) Request() (catalog.SupplierProductRequest, error) {
	var req catalog.SupplierProductRequest
	var err error
	if req.Denom, err = f.Denom.int64("denom"); err != nil {
		return req, err
	}
	if req.CostPrice, err = f.CostPrice.int64("cost_price"); err != nil {
		return req, err
	}
	if req.Price, err = f.Price.int64("price"); err != nil {
		return req, err
	}
	if req.Status, err = formStatus(f.Status); err != nil {
		return req, err
	}
	req.SupplierID = f.SupplierID
	req.SupplierProductID = strings.TrimSpace(f.SupplierProductID)
	req.Name = strings.TrimSpace(f.Name)
	return req, check(req)
}

// ProductForm is the product modal. The supplier comes from the screen's
// selection, not from the form.
type ProductForm struct {
	Name   string     `json:"name"`
	Denom  FormNumber `json:"denom"`
	Price  FormNumber `json:"price"`
	Qty    FormNumber `json:"qty"`
	Status string     `json:"status"`
}

func (f ProductForm) Request(supplierID string) (catalog.ProductRequest, error) {
	var req catalog.ProductRequest
	var err error
	if req.Denom, err = f.Denom.int64("denom"); err != nil {
		return req, err
	}
	if req.Price, err = f.Price.int64("price"); err != nil {
		return req, err
	}
	qty, err := f.Qty.int64("qty")
	if err != nil {
		return req, err
	}
	req.Qty = int(qty)
	if req.Status, err = formStatus(f.Status); err != nil {
		return req, err
	}
	if supplierID == "" {
		return req, &ValidationError{Field: "supplier_id", Message: "Select a supplier first"}
	}
	req.SupplierID = supplierID
	req.Name = strings.TrimSpace(f.Name)
	return req, check(req)
}
