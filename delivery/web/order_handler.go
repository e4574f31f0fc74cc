package web

import (
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// OrderHandler submits new transactions
type OrderHandler struct {
	base
}

func NewOrderHandler(store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) *OrderHandler {
	return &OrderHandler{base: newBase(store, workspaces, cookies, appLogger)}
}

// orderResponse is the result to show plus the form to continue with
type orderResponse struct {
	Result *dashboard.OrderResult `json:"result"`
	Form   dashboard.OrderForm    `json:"form"`
}

// SubmitHandler sends the order once. On success the returned form keeps
// the supplier, clears product and destination and carries a new ref id.
// Failures leave the caller's form, ref id included, as it was. The seller
// API key, not the session, authenticates this call, so a 401 here does
// not sign the user out.
func (h *OrderHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form dashboard.OrderForm
	if !h.decode(w, r, &form, "order") {
		return
	}

	var products = h.workspace(ctx).Transaction.View().Data.Products
	submitter := dashboard.NewSubmitter(h.Store, products, h.Logger)
	submitter.Restore(form)

	result, err := submitter.Submit(ctx)
	if err != nil {
		h.respond(ctx, w, err, "Failed to submit order")
		return
	}

	h.API.Success(ctx, w, orderResponse{Result: result, Form: submitter.Form()})
}
