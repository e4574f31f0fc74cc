package http

import (
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// OrderHandler handles seller order submissions. It is authenticated by the
// X-API-KEY header, not by a bearer token.
type OrderHandler struct {
	base
	OrderUseCase usecase.OrderUseCase
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(orderUseCase usecase.OrderUseCase, appLogger logger.LoggerInterface) *OrderHandler {
	return &OrderHandler{
		base:         newBase(appLogger),
		OrderUseCase: orderUseCase,
	}
}

// SubmitHandler stores a seller order
// Returns a 200 status code with a bare order response on success
// Returns a 401 status code for a missing or wrong API key
// Returns a 409 status code when ref_id was used for another order
func (h *OrderHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Seller order handler called")

	var req catalog.OrderRequest
	if !h.bind(w, r, &req, "seller order") {
		return
	}

	order, err := h.OrderUseCase.Submit(ctx, r.Header.Get(catalog.APIKeyHeader), req)
	if err != nil {
		h.Logger.WarnContext(ctx, "Seller order rejected", "ref_id", req.RefID, "error", err)
		h.fail(ctx, w, err, "Failed to submit order")
		return
	}

	h.Logger.InfoContext(ctx, "Seller order accepted", "trx_id", order.TrxID)
	h.API.JSON(ctx, w, http.StatusOK, order)
}
