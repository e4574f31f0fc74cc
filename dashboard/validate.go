package dashboard

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/validator"
)

// ValidationError is a local form error. It is raised before any call to
// the catalog is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var requestValidator = validator.NewValidator()

// check runs the contract's validate tags and reports the first failing
// field in name order so the message is stable.
func check(req any) error {
	failures := requestValidator.ValidateStruct(req)
	if failures == nil {
		return nil
	}
	fields := make([]string, 0, len(failures))
	for field := range failures {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return &ValidationError{Field: fields[0], Message: failures[fields[0]]}
}

// Quantity is a quantity as typed into a form. It decodes from a JSON
// number or a JSON string.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*q = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*q = Quantity(text)
		return nil
	}
	*q = Quantity(data)
	return nil
}

// Positive parses q as a number and reports whether it is a whole number
// of at least 1. "2" and "2.0" both give 2.
func (q Quantity) Positive() (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(q)), 64)
	if err != nil || f < 1 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func parseQuantity(text Quantity) (int, error) {
	n, ok := text.Positive()
	if !ok {
		return 0, &ValidationError{Field: "quantity", Message: "Quantity must be a positive whole number"}
	}
	return n, nil
}

// RecipeRow is one editable line of the manage-recipe form
type RecipeRow struct {
	SupplierProductID string   `json:"supplier_product_id"`
	Quantity          Quantity `json:"quantity"`
}

// ValidateBulkReplace turns the manage form into a replace payload. Rows
// without a supplier product or with a quantity that is not a positive
// integer are dropped. Duplicates are kept. An empty result is valid and
// clears the product's recipe.
func ValidateBulkReplace(productID string, rows []RecipeRow) catalog.BulkRecipeRequest {
	items := []catalog.RecipeLine{}
	for _, row := range rows {
		if row.SupplierProductID == "" {
			continue
		}
		quantity, ok := row.Quantity.Positive()
		if !ok {
			continue
		}
		items = append(items, catalog.RecipeLine{SupplierProductID: row.SupplierProductID, Quantity: quantity})
	}
	return catalog.BulkRecipeRequest{ProductID: productID, Items: items}
}

// ValidateSingleCreate builds the payload that adds one line to a recipe
func ValidateSingleCreate(productID, supplierProductID string, quantityText Quantity) (catalog.BulkRecipeRequest, error) {
	if productID == "" {
		return catalog.BulkRecipeRequest{}, &ValidationError{Field: "product_id", Message: "Select a product"}
	}
	if supplierProductID == "" {
		return catalog.BulkRecipeRequest{}, &ValidationError{Field: "supplier_product_id", Message: "Select a supplier product"}
	}
	quantity, err := parseQuantity(quantityText)
	if err != nil {
		return catalog.BulkRecipeRequest{}, err
	}

	req := catalog.BulkRecipeRequest{
		ProductID: productID,
		Items:     []catalog.RecipeLine{{SupplierProductID: supplierProductID, Quantity: quantity}},
	}
	return req, check(req)
}

// ValidateQuantityEdit builds the payload that changes one line's quantity
func ValidateQuantityEdit(recipeItemID string, quantityText Quantity) (catalog.UpdateRecipeItemRequest, error) {
	if recipeItemID == "" {
		return catalog.UpdateRecipeItemRequest{}, &ValidationError{Field: "id", Message: "Recipe item is required"}
	}
	quantity, err := parseQuantity(quantityText)
	if err != nil {
		return catalog.UpdateRecipeItemRequest{}, err
	}

	req := catalog.UpdateRecipeItemRequest{ID: recipeItemID, Quantity: quantity}
	return req, check(req)
}
