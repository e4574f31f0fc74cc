package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// SupplierHandler handles HTTP requests for supplier operations
type SupplierHandler struct {
	base
	// SupplierUseCase contains business logic for supplier operations
	SupplierUseCase usecase.SupplierUseCase
}

// NewSupplierHandler creates a new instance of SupplierHandler
func NewSupplierHandler(supplierUseCase usecase.SupplierUseCase, appLogger logger.LoggerInterface) *SupplierHandler {
	return &SupplierHandler{
		base:            newBase(appLogger),
		SupplierUseCase: supplierUseCase,
	}
}

// ListHandler handles HTTP requests to list every supplier
func (h *SupplierHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List suppliers handler called")

	suppliers, err := h.SupplierUseCase.List(ctx)
	if err != nil {
		h.fail(ctx, w, err, "Failed to list suppliers")
		return
	}

	h.API.Success(ctx, w, suppliers)
}

// CreateHandler handles HTTP requests to create a supplier
// Returns a 409 status code when the supplier code is taken
func (h *SupplierHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create supplier handler called")

	var req catalog.SupplierRequest
	if !h.bind(w, r, &req, "create supplier") {
		return
	}

	supplier, err := h.SupplierUseCase.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to create supplier")
		return
	}

	h.API.Created(ctx, w, supplier)
}

// UpdateHandler handles HTTP requests to update the supplier in the path
func (h *SupplierHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Update supplier handler called", "id", id)

	var req catalog.SupplierRequest
	if !h.bind(w, r, &req, "update supplier") {
		return
	}

	supplier, err := h.SupplierUseCase.Update(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to update supplier")
		return
	}

	h.API.Success(ctx, w, supplier)
}

// DeleteHandler handles HTTP requests to delete the supplier in the path
// Returns a 409 status code while the supplier still owns products
func (h *SupplierHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Delete supplier handler called", "id", id)

	if err := h.SupplierUseCase.Delete(ctx, id); err != nil {
		h.fail(ctx, w, err, "Failed to delete supplier")
		return
	}

	h.API.Message(ctx, w, "Supplier deleted successfully")
}
