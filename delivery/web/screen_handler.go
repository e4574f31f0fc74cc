package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// screenView is a page snapshot with its data already shaped for the screen
type screenView struct {
	State dashboard.LoadState `json:"state"`
	Error string              `json:"error,omitempty"`
	Seq   uint64              `json:"seq"`
	Data  any                 `json:"data,omitempty"`
}

// render answers with the current view of page. A failed load is still a
// 200 carrying the failed state; only an expired session or a superseded
// load turn into error responses.
func render[T, S any](b base, w http.ResponseWriter, r *http.Request, view dashboard.View[T], err error, shape func(T) S) {
	if errors.Is(err, httpclient.ErrUnauthorized) || errors.Is(err, dashboard.ErrSupersededLoad) {
		b.fail(w, r, err, "Failed to load screen")
		return
	}

	out := screenView{State: view.State, Error: view.Error, Seq: view.Seq}
	if view.State == dashboard.StateFailed {
		b.Logger.WarnContext(r.Context(), "Screen load failed", "seq", view.Seq, "error", view.Error)
	} else {
		out.Data = shape(view.Data)
	}
	b.API.Success(r.Context(), w, out)
}

// load runs a full page load for the caller's workspace and renders it
func load[T, S any](b base, w http.ResponseWriter, r *http.Request, page *dashboard.Page[T], fetch func(context.Context, dashboard.CatalogStore) (T, error), shape func(T) S) {
	view, err := page.Load(r.Context(), func(ctx context.Context) (T, error) {
		return fetch(ctx, b.Store)
	})
	render(b, w, r, view, err, shape)
}

// reload is load after a write that went through. A newer load of the same
// page supersedes the reload without failing the write, so its view is the
// answer.
func reload[T, S any](b base, w http.ResponseWriter, r *http.Request, page *dashboard.Page[T], fetch func(context.Context, dashboard.CatalogStore) (T, error), shape func(T) S) {
	view, err := page.Load(r.Context(), func(ctx context.Context) (T, error) {
		return fetch(ctx, b.Store)
	})
	if errors.Is(err, dashboard.ErrSupersededLoad) {
		view, err = page.View(), nil
	}
	render(b, w, r, view, err, shape)
}

func same[T any](v T) T { return v }

func selection(r *http.Request) dashboard.SupplierSelection {
	return dashboard.SupplierSelection(r.URL.Query().Get("supplier_id"))
}

// ScreenHandler serves the read-only screens
type ScreenHandler struct {
	base
}

func NewScreenHandler(store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) *ScreenHandler {
	return &ScreenHandler{base: newBase(store, workspaces, cookies, appLogger)}
}

// SessionHandler returns the profile and the role's menu
func (h *ScreenHandler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := dashboard.LoadSession(ctx, h.Store)
	if err != nil {
		h.fail(w, r, err, "Failed to load session")
		return
	}
	h.API.Success(ctx, w, session)
}

// SummaryHandler is the dashboard home
func (h *ScreenHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	load(h.base, w, r, &ws.Summary, dashboard.LoadSummary, same[dashboard.SummaryData])
}

// ProductsHandler lists the products of ?supplier_id
func (h *ScreenHandler) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	sel := selection(r)
	load(h.base, w, r, &ws.Products, dashboard.LoadProducts, func(d dashboard.ProductsData) dashboard.ProductsScreen {
		return d.Screen(sel)
	})
}

func (h *ScreenHandler) SuppliersHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	load(h.base, w, r, &ws.Suppliers, dashboard.LoadSuppliers, same[dashboard.SuppliersScreen])
}

// SupplierProductsHandler lists the supplier products of ?supplier_id
func (h *ScreenHandler) SupplierProductsHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	sel := selection(r)
	load(h.base, w, r, &ws.SupplierProducts, dashboard.LoadSupplierProducts, func(d dashboard.SupplierProductsData) dashboard.SupplierProductsScreen {
		return d.Screen(sel)
	})
}

// RecipesHandler shows the recipe groups of ?supplier_id
func (h *ScreenHandler) RecipesHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	sel := selection(r)
	load(h.base, w, r, &ws.Recipes, dashboard.LoadRecipes, func(d dashboard.RecipesData) dashboard.RecipesScreen {
		return d.Screen(sel)
	})
}

// TransactionHandler renders the order form. The form travels in the query
// (supplier_id, product_id, destination, ref_id); an empty ref_id gets a
// new one.
func (h *ScreenHandler) TransactionHandler(w http.ResponseWriter, r *http.Request) {
	ws := h.workspace(r.Context())
	query := r.URL.Query()
	form := dashboard.OrderForm{
		SupplierID:  query.Get("supplier_id"),
		ProductID:   query.Get("product_id"),
		Destination: query.Get("destination"),
		RefID:       query.Get("ref_id"),
	}
	load(h.base, w, r, &ws.Transaction, dashboard.LoadTransaction, func(d dashboard.TransactionData) dashboard.TransactionScreen {
		s := dashboard.NewSubmitter(h.Store, d.Products, h.Logger)
		s.Restore(form)
		return d.Screen(s)
	})
}

// UsersHandler lists accounts. The catalog only answers it for Admin.
func (h *ScreenHandler) UsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		h.fail(w, r, err, "Failed to load users")
		return
	}
	h.API.Success(ctx, w, users)
}
