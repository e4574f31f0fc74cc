// Package web is the dashboard's HTTP front: session cookies, JSON screens
// and the form endpoints that drive the dashboard view models.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/pkg/validator"
)

// CodeSuperseded marks a screen load that a newer one replaced
const CodeSuperseded = "SUPERSEDED"

// redirectResponse tells the browser where to go next
type redirectResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect"`
}

// base bundles what every handler needs to read a request and answer it
type base struct {
	Logger     logger.LoggerInterface
	API        api.Api
	Validator  validator.Validator
	Store      dashboard.CatalogStore
	Workspaces *dashboard.Workspaces
	Cookies    Cookies
}

func newBase(store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) base {
	return base{
		Logger:     appLogger,
		API:        api.New(),
		Validator:  validator.NewValidator(),
		Store:      store,
		Workspaces: workspaces,
		Cookies:    cookies,
	}
}

// decode reads the JSON body into dst. It writes the 400 itself.
func (b base) decode(w http.ResponseWriter, r *http.Request, dst any, name string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.Logger.ErrorContext(r.Context(), "Failed to decode "+name+" request", "error", err)
		b.API.BadRequest(r.Context(), w, "Invalid request body")
		return false
	}
	return true
}

// bind decodes and validates a catalog contract
func (b base) bind(w http.ResponseWriter, r *http.Request, dst any, name string) bool {
	if !b.decode(w, r, dst, name) {
		return false
	}
	if validationErrors := b.Validator.ValidateStruct(dst); validationErrors != nil {
		b.Logger.WarnContext(r.Context(), "Validation failed for "+name+" request", "errors", validationErrors)
		b.API.ValidationError(r.Context(), w, api.DetailsFromMap(validationErrors))
		return false
	}
	return true
}

func (b base) workspace(ctx context.Context) *dashboard.Workspace {
	return b.Workspaces.Get(sessionFrom(ctx))
}

// fail answers a failed catalog call made with the caller's bearer token.
// A 401 from the catalog ends the session.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ctx := r.Context()
	if errors.Is(err, httpclient.ErrUnauthorized) {
		b.Logger.WarnContext(ctx, "Catalog rejected the session", "error", err)
		b.Workspaces.Drop(sessionFrom(ctx))
		b.Cookies.Clear(w)
		b.API.JSON(ctx, w, http.StatusUnauthorized, redirectResponse{
			Status:   api.StatusError,
			Message:  err.Error(),
			Redirect: LoginPath,
		})
		return
	}
	b.respond(ctx, w, err, fallback)
}

// respond maps an error onto a response without touching the session
func (b base) respond(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var validationErr *dashboard.ValidationError
	var statusErr *httpclient.StatusError

	switch {
	case errors.As(err, &validationErr):
		b.Logger.WarnContext(ctx, "Form rejected", "field", validationErr.Field, "message", validationErr.Message)
		b.API.ValidationError(ctx, w, []api.ErrorDetail{{Field: validationErr.Field, Message: validationErr.Message}})
	case errors.Is(err, dashboard.ErrSupersededLoad):
		b.API.Error(ctx, w, http.StatusConflict, &api.Error{Code: CodeSuperseded, Message: "A newer load replaced this one"})
	case errors.As(err, &statusErr):
		b.Logger.WarnContext(ctx, "Catalog rejected the request", "status", statusErr.StatusCode, "message", statusErr.Message)
		code := statusErr.Code
		if code == "" {
			code = statusCode(statusErr.StatusCode)
		}
		b.API.Error(ctx, w, statusErr.StatusCode, &api.Error{Code: code, Message: statusErr.Message})
	default:
		b.Logger.ErrorContext(ctx, fallback, "error", err)
		b.API.Error(ctx, w, http.StatusBadGateway, &api.Error{Code: "BAD_GATEWAY", Message: fallback})
	}
}

// statusCode turns 422 into UNPROCESSABLE_ENTITY and so on
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UPSTREAM_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
