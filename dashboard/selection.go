package dashboard

import "github.com/izaldotcom/gerbang-backoffice/contracts/catalog"

// SupplierSelection is the supplier chosen on a screen. Every
// supplier-scoped list (products, supplier products, recipe groups) is empty
// while nothing is selected; it never falls back to showing everything.
type SupplierSelection string

// NoSelection means no supplier has been chosen yet
const NoSelection SupplierSelection = ""

// Selected reports whether a concrete supplier is chosen
func (s SupplierSelection) Selected() bool {
	return s != NoSelection
}

// Toggle picks id, or clears the selection when id is already picked
func (s SupplierSelection) Toggle(id string) SupplierSelection {
	if string(s) == id {
		return NoSelection
	}
	return SupplierSelection(id)
}

// FilterProductsBySupplier keeps the products owned by the selected supplier
func FilterProductsBySupplier(products []catalog.ProductResponse, supplier SupplierSelection) []catalog.ProductResponse {
	out := []catalog.ProductResponse{}
	if !supplier.Selected() {
		return out
	}
	for _, p := range products {
		if p.SupplierID == string(supplier) {
			out = append(out, p)
		}
	}
	return out
}

// FilterSupplierProductsBySupplier keeps the supplier products offered by the selected supplier
func FilterSupplierProductsBySupplier(items []catalog.SupplierProductResponse, supplier SupplierSelection) []catalog.SupplierProductResponse {
	out := []catalog.SupplierProductResponse{}
	if !supplier.Selected() {
		return out
	}
	for _, sp := range items {
		if sp.SupplierID == string(supplier) {
			out = append(out, sp)
		}
	}
	return out
}
