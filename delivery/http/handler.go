// Package http contains the catalog service HTTP delivery
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/pkg/validator"
)

// base bundles what every handler needs to read a request and answer it
type base struct {
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Validator checks request contracts
	Validator validator.Validator
}

func newBase(appLogger logger.LoggerInterface) base {
	return base{
		Logger:    appLogger,
		API:       api.New(),
		Validator: validator.NewValidator(),
	}
}

// bind decodes the JSON body into dst and validates it. It writes the
// error response itself and reports whether the handler may continue.
func (b base) bind(w http.ResponseWriter, r *http.Request, dst any, name string) bool {
	ctx := r.Context()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.Logger.ErrorContext(ctx, "Failed to decode "+name+" request", "error", err)
		b.API.BadRequest(ctx, w, "Invalid request body")
		return false
	}

	if validationErrors := b.Validator.ValidateStruct(dst); validationErrors != nil {
		b.Logger.WarnContext(ctx, "Validation failed for "+name+" request", "errors", validationErrors)
		b.API.ValidationError(ctx, w, api.DetailsFromMap(validationErrors))
		return false
	}

	return true
}

// fail maps domain errors onto their HTTP status. Anything else is a 500
// carrying the fallback message.
func (b base) fail(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		b.Logger.ErrorContext(ctx, fallback, "error", err)
		b.API.InternalServerError(ctx, w, fallback)
		return
	}

	switch appErr.Code {
	case http.StatusBadRequest:
		b.API.BadRequest(ctx, w, appErr.Message)
	case http.StatusUnauthorized:
		b.API.Unauthorized(ctx, w, appErr.Message)
	case http.StatusForbidden:
		b.API.Forbidden(ctx, w, appErr.Message)
	case http.StatusNotFound:
		b.API.NotFound(ctx, w, appErr.Message)
	case http.StatusConflict:
		b.API.Conflict(ctx, w, appErr.Message)
	case http.StatusUnprocessableEntity:
		b.API.UnprocessableEntity(ctx, w, appErr.Reason, appErr.Message)
	default:
		b.API.InternalServerError(ctx, w, appErr.Message)
	}
}
