package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// SupplierProductHandler handles HTTP requests for supplier product operations
type SupplierProductHandler struct {
	base
	SupplierProductUseCase usecase.SupplierProductUseCase
}

// NewSupplierProductHandler creates a new instance of SupplierProductHandler
func NewSupplierProductHandler(supplierProductUseCase usecase.SupplierProductUseCase, appLogger logger.LoggerInterface) *SupplierProductHandler {
	return &SupplierProductHandler{
		base:                   newBase(appLogger),
		SupplierProductUseCase: supplierProductUseCase,
	}
}

// ListHandler lists supplier products, optionally narrowed by ?supplier_id=
func (h *SupplierProductHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	supplierID := r.URL.Query().Get("supplier_id")
	h.Logger.InfoContext(ctx, "List supplier products handler called", "supplier_id", supplierID)

	products, err := h.SupplierProductUseCase.List(ctx, supplierID)
	if err != nil {
		h.fail(ctx, w, err, "Failed to list supplier products")
		return
	}

	h.API.Success(ctx, w, products)
}

func (h *SupplierProductHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create supplier product handler called")

	var req catalog.SupplierProductRequest
	if !h.bind(w, r, &req, "create supplier product") {
		return
	}

	product, err := h.SupplierProductUseCase.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to create supplier product")
		return
	}

	h.API.Created(ctx, w, product)
}

func (h *SupplierProductHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Update supplier product handler called", "id", id)

	var req catalog.SupplierProductRequest
	if !h.bind(w, r, &req, "update supplier product") {
		return
	}

	product, err := h.SupplierProductUseCase.Update(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to update supplier product")
		return
	}

	h.API.Success(ctx, w, product)
}

func (h *SupplierProductHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Delete supplier product handler called", "id", id)

	if err := h.SupplierProductUseCase.Delete(ctx, id); err != nil {
		h.fail(ctx, w, err, "Failed to delete supplier product")
		return
	}

	h.API.Message(ctx, w, "Supplier product deleted successfully")
}
