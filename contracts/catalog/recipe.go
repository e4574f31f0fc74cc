package catalog

// RecipeLine is one supplier product and its multiplier inside a recipe payload
type RecipeLine struct {
	SupplierProductID string `json:"supplier_product_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"gte=1"`
}

// BulkRecipeRequest is shared by POST /recipes (add lines) and
// PUT /recipes/replace (replace every line). An empty Items on replace
// removes the whole composition.
type BulkRecipeRequest struct {
	ProductID string       `json:"product_id" validate:"required"`
	Items     []RecipeLine `json:"items" validate:"dive"`
}

// UpdateRecipeItemRequest changes the quantity of one recipe line
type UpdateRecipeItemRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// RecipeItemResponse is one persisted recipe line. SupplierProductID refers
// to the internal supplier product ID.
type RecipeItemResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	SupplierProductID string `json:"supplier_product_id"`
	Quantity          int    `json:"quantity"`
}
