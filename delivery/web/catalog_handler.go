package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// CatalogHandler saves the supplier, supplier product and product forms.
// Every successful write answers with the reloaded screen.
type CatalogHandler struct {
	base
}

func NewCatalogHandler(store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) *CatalogHandler {
	return &CatalogHandler{base: newBase(store, workspaces, cookies, appLogger)}
}

func (h *CatalogHandler) suppliers(w http.ResponseWriter, r *http.Request) {
	reload(h.base, w, r, &h.workspace(r.Context()).Suppliers, dashboard.LoadSuppliers, same[dashboard.SuppliersScreen])
}

func (h *CatalogHandler) supplierProducts(w http.ResponseWriter, r *http.Request) {
	sel := selection(r)
	reload(h.base, w, r, &h.workspace(r.Context()).SupplierProducts, dashboard.LoadSupplierProducts, func(d dashboard.SupplierProductsData) dashboard.SupplierProductsScreen {
		return d.Screen(sel)
	})
}

func (h *CatalogHandler) products(w http.ResponseWriter, r *http.Request) {
	sel := selection(r)
	reload(h.base, w, r, &h.workspace(r.Context()).Products, dashboard.LoadProducts, func(d dashboard.ProductsData) dashboard.ProductsScreen {
		return d.Screen(sel)
	})
}

func (h *CatalogHandler) CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form dashboard.SupplierForm
	if !h.decode(w, r, &form, "create supplier") {
		return
	}
	req, err := form.Request()
	if err != nil {
		h.respond(ctx, w, err, "Invalid supplier")
		return
	}

	h.Logger.InfoContext(ctx, "Creating supplier", "code", req.Code)

	if _, err := h.Store.CreateSupplier(ctx, req); err != nil {
		h.fail(w, r, err, "Failed to create supplier")
		return
	}
	h.suppliers(w, r)
}

func (h *CatalogHandler) UpdateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var form dashboard.SupplierForm
	if !h.decode(w, r, &form, "update supplier") {
		return
	}
	req, err := form.Request()
	if err != nil {
		h.respond(ctx, w, err, "Invalid supplier")
		return
	}

	h.Logger.InfoContext(ctx, "Updating supplier", "id", id)

	if _, err := h.Store.UpdateSupplier(ctx, id, req); err != nil {
		h.fail(w, r, err, "Failed to update supplier")
		return
	}
	h.suppliers(w, r)
}

func (h *CatalogHandler) DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	h.Logger.InfoContext(ctx, "Deleting supplier", "id", id)

	if err := h.Store.DeleteSupplier(ctx, id); err != nil {
		h.fail(w, r, err, "Failed to delete supplier")
		return
	}
	h.suppliers(w, r)
}

func (h *CatalogHandler) CreateSupplierProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form dashboard.SupplierProductForm
	if !h.decode(w, r, &form, "create supplier product") {
		return
	}
	req, err := form.Request()
	if err != nil {
		h.respond(ctx, w, err, "Invalid supplier product")
		return
	}

	h.Logger.InfoContext(ctx, "Creating supplier product", "supplier_id", req.SupplierID, "supplier_product_id", req.SupplierProductID)

	if _, err := h.Store.CreateSupplierProduct(ctx, req); err != nil {
		h.fail(w, r, err, "Failed to create supplier product")
		return
	}
	h.supplierProducts(w, r)
}

func (h *CatalogHandler) UpdateSupplierProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var form dashboard.SupplierProductForm
	if !h.decode(w, r, &form, "update supplier product") {
		return
	}
	req, err := form.Request()
	if err != nil {
		h.respond(ctx, w, err, "Invalid supplier product")
		return
	}

	h.Logger.InfoContext(ctx, "Updating supplier product", "id", id)

	if _, err := h.Store.UpdateSupplierProduct(ctx, id, req); err != nil {
		h.fail(w, r, err, "Failed to update supplier product")
		return
	}
	h.supplierProducts(w, r)
}

func (h *CatalogHandler) DeleteSupplierProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	h.Logger.InfoContext(ctx, "Deleting supplier product", "id", id)

	if err := h.Store.DeleteSupplierProduct(ctx, id); err != nil {
		h.fail(w, r, err, "Failed to delete supplier product")
		return
	}
	h.supplierProducts(w, r)
}

// CreateProductHandler assigns the product to ?supplier_id
func (h *CatalogHandler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form dashboard.ProductForm
	if !h.decode(w, r, &form, "create product") {
		return
	}
	req, err := form.Request(string(selection(r)))
	if err != nil {
		h.respond(ctx, w, err, "Invalid product")
		return
	}

	h.Logger.InfoContext(ctx, "Creating product", "supplier_id", req.SupplierID, "name", req.Name)

	if _, err := h.Store.CreateProduct(ctx, req); err != nil {
		h.fail(w, r, err, "Failed to create product")
		return
	}
	h.products(w, r)
}

func (h *CatalogHandler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var form dashboard.ProductForm
	if !h.decode(w, r, &form, "update product") {
		return
	}
	req, err := form.Request(string(selection(r)))
	if err != nil {
		h.respond(ctx, w, err, "Invalid product")
		return
	}

	h.Logger.InfoContext(ctx, "Updating product", "id", id)

	if _, err := h.Store.UpdateProduct(ctx, id, req); err != nil {
		h.fail(w, r, err, "Failed to update product")
		return
	}
	h.products(w, r)
}

func (h *CatalogHandler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	h.Logger.InfoContext(ctx, "Deleting product", "id", id)

	if err := h.Store.DeleteProduct(ctx, id); err != nil {
		h.fail(w, r, err, "Failed to delete product")
		return
	}
	h.products(w, r)
}
