package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// RecipeHandler handles HTTP requests for recipe lines
type RecipeHandler struct {
	base
	RecipeUseCase usecase.RecipeUseCase
}

// NewRecipeHandler creates a new instance of RecipeHandler
func NewRecipeHandler(recipeUseCase usecase.RecipeUseCase, appLogger logger.LoggerInterface) *RecipeHandler {
	return &RecipeHandler{
		base:          newBase(appLogger),
		RecipeUseCase: recipeUseCase,
	}
}

// ListHandler returns every recipe line as a flat list
func (h *RecipeHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List recipes handler called")

	items, err := h.RecipeUseCase.List(ctx)
	if err != nil {
		h.fail(ctx, w, err, "Failed to list recipes")
		return
	}

	h.API.Success(ctx, w, items)
}

// CreateHandler adds lines to a product's recipe
// Returns a 422 status code when a line belongs to another supplier
func (h *RecipeHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create recipe handler called")

	var req catalog.BulkRecipeRequest
	if !h.bind(w, r, &req, "create recipe") {
		return
	}

	items, err := h.RecipeUseCase.Create(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to create recipe")
		return
	}

	h.API.Created(ctx, w, items)
}

// UpdateHandler changes the quantity of one recipe line
func (h *RecipeHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update recipe item handler called")

	var req catalog.UpdateRecipeItemRequest
	if !h.bind(w, r, &req, "update recipe item") {
		return
	}

	item, err := h.RecipeUseCase.UpdateQuantity(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to update recipe item")
		return
	}

	h.API.Success(ctx, w, item)
}

// ReplaceHandler overwrites a product's whole recipe
func (h *RecipeHandler) ReplaceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Replace recipe handler called")

	var req catalog.BulkRecipeRequest
	if !h.bind(w, r, &req, "replace recipe") {
		return
	}

	items, err := h.RecipeUseCase.Replace(ctx, req)
	if err != nil {
		h.fail(ctx, w, err, "Failed to replace recipe")
		return
	}

	h.API.Success(ctx, w, items)
}

func (h *RecipeHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	h.Logger.InfoContext(ctx, "Delete recipe item handler called", "id", id)

	if err := h.RecipeUseCase.Delete(ctx, id); err != nil {
		h.fail(ctx, w, err, "Failed to delete recipe item")
		return
	}

	h.API.Message(ctx, w, "Recipe item deleted successfully")
}
