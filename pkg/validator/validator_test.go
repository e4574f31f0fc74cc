package validator

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supplierRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Code   string `json:"code" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=true false"`
}

type recipeRequest struct {
	ProductID string       `json:"product_id" validate:"required,ulid"`
	Items     []recipeLine `json:"items" validate:"dive"`
}

type recipeLine struct {
	SupplierProductID string `json:"supplier_product_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"gte=1"`
}

type loginRequest struct {
	Email      string `json:"email" validate:"required_without=Identifier,omitempty,email"`
	Identifier string `json:"identifier"`
	Password   string `json:"password" validate:"required"`
}

func TestNewValidator(t *testing.T) {
	require.NotNil(t, NewValidator(), "NewValidator() should not return nil")
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := NewValidator().ValidateStruct(supplierRequest{Name: "Telkomsel", Code: "TSEL", Status: "true"})
	assert.Nil(t, errs, "Expected no validation errors")
}

func TestValidateStruct_UsesJSONFieldNames(t *testing.T) {
	errs := NewValidator().ValidateStruct(supplierRequest{Name: "x", Status: "maybe"})
	require.NotNil(t, errs)

	assert.Len(t, errs, 3)
	assert.Equal(t, "Name must be at least 2 characters long", errs["name"])
	assert.Equal(t, "Code is required", errs["code"])
	assert.Equal(t, "Status must be one of the following: true false", errs["status"])
}

func TestValidateStruct_ULIDAndNestedItems(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateStruct(recipeRequest{
		ProductID: "not-a-ulid",
		Items:     []recipeLine{{SupplierProductID: "", Quantity: 0}},
	})
	require.NotNil(t, errs)
	assert.Equal(t, "Product Id must be a valid identifier", errs["product_id"])
	assert.Equal(t, "Supplier Product Id is required", errs["supplier_product_id"])
	assert.Equal(t, "Quantity must be greater than or equal to 1", errs["quantity"])

	ok := v.ValidateStruct(recipeRequest{
		ProductID: ulid.Make().String(),
		Items:     []recipeLine{{SupplierProductID: "sp1", Quantity: 2}},
	})
	assert.Nil(t, ok)
}

func TestValidateStruct_EmailOrIdentifier(t *testing.T) {
	v := NewValidator()

	assert.Nil(t, v.ValidateStruct(loginRequest{Email: "admin@example.com", Password: "secret"}))
	assert.Nil(t, v.ValidateStruct(loginRequest{Identifier: "08123", Password: "secret"}))

	errs := v.ValidateStruct(loginRequest{Password: "secret"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "email")

	errs = v.ValidateStruct(loginRequest{Email: "nope", Password: "secret"})
	require.NotNil(t, errs)
	assert.Equal(t, "Email must be a valid email address", errs["email"])
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	errs := NewValidator().ValidateStruct("plain string")
	require.NotNil(t, errs)
	assert.Contains(t, errs, "_")
}

func TestPrettifyFieldName(t *testing.T) {
	cases := map[string]string{
		"supplier_product_id": "Supplier Product Id",
		"supplierProductID":   "Supplier Product ID",
		"name":                "Name",
		"Quantity":            "Quantity",
	}
	for in, want := range cases {
		assert.Equal(t, want, prettifyFieldName(in), "field %q", in)
	}
}
