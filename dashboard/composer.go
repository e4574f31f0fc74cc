package dashboard

import "github.com/izaldotcom/gerbang-backoffice/contracts/catalog"

// RecipeGroup is every recipe line of one product. It is derived from the
// flat recipe list and never stored.
type RecipeGroup struct {
	ProductID string `json:"product_id"`
	// ProductName is empty when the product is not in the product list
	ProductName    string                       `json:"product_name,omitempty"`
	HasProductName bool                         `json:"-"`
	Items          []catalog.RecipeItemResponse `json:"items"`
}

// GroupByProduct partitions items by product. Groups come out in order of
// first appearance and keep the input order of their items. Products
// without lines produce no group.
func GroupByProduct(items []catalog.RecipeItemResponse, products []catalog.ProductResponse) []RecipeGroup {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	groups := []RecipeGroup{}
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.ProductID]
		if !ok {
			name, known := names[item.ProductID]
			groups = append(groups, RecipeGroup{
				ProductID:      item.ProductID,
				ProductName:    name,
				HasProductName: known,
			})
			i = len(groups) - 1
			index[item.ProductID] = i
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// FilterGroupsBySupplier keeps the groups whose product belongs to the
// selected supplier. Groups whose product is unknown are dropped, and
// NoSelection yields nothing.
func FilterGroupsBySupplier(groups []RecipeGroup, products []catalog.ProductResponse, supplier SupplierSelection) []RecipeGroup {
	out := []RecipeGroup{}
	if !supplier.Selected() {
		return out
	}

	owner := make(map[string]string, len(products))
	for _, p := range products {
		owner[p.ID] = p.SupplierID
	}

	for _, g := range groups {
		if supplierID, ok := owner[g.ProductID]; ok && supplierID == string(supplier) {
			out = append(out, g)
		}
	}
	return out
}
