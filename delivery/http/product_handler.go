package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// ProductHandler handles HTTP requests for product operations.
// Reads live under /products while mutations use /product?id=.
type ProductHandler struct {
	base
	ProductUseCase usecase.ProductUseCase
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productUseCase usecase.ProductUseCase, appLogger logger.LoggerInterface) *ProductHandler {
	return &ProductHandler{
		base:           newBase(appLogger),
		ProductUseCase: productUseCase,
	}
}

// ListHandler lists products, optionally narrowed by ?supplier_id=
func (h *ProductHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	supplierID := r.URL.Query().Get("supplier_id")
	h.Logger.InfoContext(ctx, "List products handler called", "supplier_id", supplierID)

	products, err := h.ProductUseCase.List(ctx, supplierID)
	if err != nil {
		h.fail(ctx, w, err, "Failed to list products")
		return
	}

	h.API.Success(ctx, w, products)
}

// GetByIDHandler returns the product in the path
func (h *ProductHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Get product handler called", "id", id)

	product, err := h.ProductUseCase.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, err, "Failed to get product")
		return
	}

	h.API.Success(ctx, w, product)
}

func (h *ProductHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create product handler called")

	var req catalog.ProductRequest
	if !h.bind(w, r, &req, "create product") {
		return
	}

	product, err := h.ProductUseCase.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to create product")
		return
	}

	h.API.Created(ctx, w, product)
}

// UpdateHandler updates the product named by the id query parameter
func (h *ProductHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	h.Logger.InfoContext(ctx, "Update product handler called", "id", id)

	if id == "" {
		h.fail(ctx, w, domain.ErrInvalidID, "Failed to update product")
		return
	}

	var req catalog.ProductRequest
	if !h.bind(w, r, &req, "update product") {
		return
	}

	product, err := h.ProductUseCase.Update(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to update product")
		return
	}

	h.API.Success(ctx, w, product)
}

// DeleteHandler deletes the product named by the id query parameter
func (h *ProductHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	h.Logger.InfoContext(ctx, "Delete product handler called", "id", id)

	if id == "" {
		h.fail(ctx, w, domain.ErrInvalidID, "Failed to delete product")
		return
	}

	if err := h.ProductUseCase.Delete(ctx, id); err != nil {
		h.fail(ctx, w, err, "Failed to delete product")
		return
	}

	h.API.Message(ctx, w, "Product deleted successfully")
}
