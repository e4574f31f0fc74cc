package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// RecipeHandler runs the recipe edit modal. Each request opens the editor
// in one mode, applies the submitted form and saves. A successful save
// reloads the recipes screen, which is the response.
type RecipeHandler struct {
	base
}

func NewRecipeHandler(store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) *RecipeHandler {
	return &RecipeHandler{base: newBase(store, workspaces, cookies, appLogger)}
}

type quantityForm struct {
	Quantity dashboard.Quantity `json:"quantity"`
}

type manageForm struct {
	Rows []dashboard.RecipeRow `json:"rows"`
}

// editor returns a closed editor whose refetch reloads the caller's
// recipes page
func (h *RecipeHandler) editor(ctx context.Context) (*dashboard.RecipeEditor, *dashboard.Page[dashboard.RecipesData]) {
	page := &h.workspace(ctx).Recipes
	refetch := func(ctx context.Context) error {
		_, err := page.Load(ctx, func(ctx context.Context) (dashboard.RecipesData, error) {
			return dashboard.LoadRecipes(ctx, h.Store)
		})
		return err
	}
	return dashboard.NewRecipeEditor(h.Store, refetch, h.Logger), page
}

// save submits the open editor. When the save went through, the reloaded
// screen is the answer even if the reload itself failed or was superseded
// by a newer one.
func (h *RecipeHandler) save(w http.ResponseWriter, r *http.Request, editor *dashboard.RecipeEditor, page *dashboard.Page[dashboard.RecipesData]) {
	err := editor.Submit(r.Context())
	if err != nil && editor.Mode() != dashboard.ModeClosed {
		h.fail(w, r, err, "Failed to save recipe")
		return
	}
	if errors.Is(err, dashboard.ErrSupersededLoad) {
		err = nil
	}

	sel := selection(r)
	render(h.base, w, r, page.View(), err, func(d dashboard.RecipesData) dashboard.RecipesScreen {
		return d.Screen(sel)
	})
}

// CreateHandler adds one line to a product's recipe
func (h *RecipeHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form dashboard.CreateForm
	if !h.decode(w, r, &form, "create recipe") {
		return
	}

	h.Logger.InfoContext(ctx, "Adding recipe line", "product_id", form.ProductID, "supplier_product_id", form.SupplierProductID)

	editor, page := h.editor(ctx)
	if err := editor.OpenCreate(form.ProductID); err != nil {
		h.respond(ctx, w, err, "Failed to open recipe form")
		return
	}
	if err := editor.SetCreateForm(form); err != nil {
		h.respond(ctx, w, err, "Failed to fill recipe form")
		return
	}
	h.save(w, r, editor, page)
}

// UpdateHandler changes the quantity of the line {id}
func (h *RecipeHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var form quantityForm
	if !h.decode(w, r, &form, "update recipe") {
		return
	}

	h.Logger.InfoContext(ctx, "Changing recipe quantity", "id", id)

	editor, page := h.editor(ctx)
	item, ok := page.View().Data.Item(id)
	if !ok {
		item = catalog.RecipeItemResponse{ID: id}
	}
	if err := editor.OpenEditQuantity(item); err != nil {
		h.respond(ctx, w, err, "Failed to open recipe form")
		return
	}
	if err := editor.SetQuantity(form.Quantity); err != nil {
		h.respond(ctx, w, err, "Failed to fill recipe form")
		return
	}
	h.save(w, r, editor, page)
}

// ReplaceHandler saves the whole recipe of {productID}. An empty row list
// removes every line.
func (h *RecipeHandler) ReplaceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productID")

	var form manageForm
	if !h.decode(w, r, &form, "replace recipe") {
		return
	}

	h.Logger.InfoContext(ctx, "Replacing recipe", "product_id", productID, "rows", len(form.Rows))

	editor, page := h.editor(ctx)
	if err := editor.OpenManage(page.View().Data.Group(productID)); err != nil {
		h.respond(ctx, w, err, "Failed to open recipe form")
		return
	}
	if err := editor.SetRows(form.Rows); err != nil {
		h.respond(ctx, w, err, "Failed to fill recipe form")
		return
	}
	h.save(w, r, editor, page)
}

// DeleteHandler removes the line {id} and reloads the screen
func (h *RecipeHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	h.Logger.InfoContext(ctx, "Deleting recipe line", "id", id)

	if err := h.Store.DeleteRecipeItem(ctx, id); err != nil {
		h.fail(w, r, err, "Failed to delete recipe line")
		return
	}

	sel := selection(r)
	reload(h.base, w, r, &h.workspace(ctx).Recipes, dashboard.LoadRecipes, func(d dashboard.RecipesData) dashboard.RecipesScreen {
		return d.Screen(sel)
	})
}
