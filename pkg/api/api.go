package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response represents the standard API response format.
// Message duplicates Error.Message so callers reading the top-level
// "message" field get the human readable reason.
type Response struct {
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

// Error represents the standard error format
type Error struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail contains detailed error information for specific fields
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Api interface defines methods for standard API responses
type Api interface {
	Success(ctx context.Context, w http.ResponseWriter, data any)
	Created(ctx context.Context, w http.ResponseWriter, data any)
	Message(ctx context.Context, w http.ResponseWriter, message string)
	JSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any)
	Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error)
	BadRequest(ctx context.Context, w http.ResponseWriter, message string)
	Unauthorized(ctx context.Context, w http.ResponseWriter, message string)
	Forbidden(ctx context.Context, w http.ResponseWriter, message string)
	NotFound(ctx context.Context, w http.ResponseWriter, message string)
	Conflict(ctx context.Context, w http.ResponseWriter, message string)
	UnprocessableEntity(ctx context.Context, w http.ResponseWriter, code, message string)
	InternalServerError(ctx context.Context, w http.ResponseWriter, message string)
	ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail)
}

type api struct {
}

// New creates a new instance of the API response handler
func New() Api {
	return &api{}
}

func (a *api) buildResponse(ctx context.Context, status string, data any, apiErr *Error) Response {
	response := Response{
		RequestID: middleware.GetReqID(ctx),
		Status:    status,
		Data:      data,
	}

	if apiErr != nil {
		response.Error = apiErr
		response.Message = apiErr.Message
	}

	return response
}

func (a *api) write(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// The status line is already out; an encode failure here cannot be reported to the client.
	_ = json.NewEncoder(w).Encode(body)
}

// Success sends a successful response with data
func (a *api) Success(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(w, http.StatusOK, a.buildResponse(ctx, StatusSuccess, data, nil))
}

// Created sends a 201 Created response with data
func (a *api) Created(ctx context.Context, w http.ResponseWriter, data any) {
	a.write(w, http.StatusCreated, a.buildResponse(ctx, StatusSuccess, data, nil))
}

// Message sends a 200 response that only carries a message
func (a *api) Message(ctx context.Context, w http.ResponseWriter, message string) {
	response := a.buildResponse(ctx, StatusSuccess, nil, nil)
	response.Message = message
	a.write(w, http.StatusOK, response)
}

// JSON writes body as-is, without the envelope
func (a *api) JSON(_ context.Context, w http.ResponseWriter, statusCode int, body any) {
	a.write(w, statusCode, body)
}

// Error sends an error response with specific HTTP status code and error details
func (a *api) Error(ctx context.Context, w http.ResponseWriter, statusCode int, apiErr *Error) {
	a.write(w, statusCode, a.buildResponse(ctx, StatusError, nil, apiErr))
}

// BadRequest sends a 400 Bad Request response
func (a *api) BadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusBadRequest, &Error{Code: "BAD_REQUEST", Message: message})
}

// Unauthorized sends a 401 Unauthorized response
func (a *api) Unauthorized(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusUnauthorized, &Error{Code: "UNAUTHORIZED", Message: message})
}

// Forbidden sends a 403 Forbidden response
func (a *api) Forbidden(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusForbidden, &Error{Code: "FORBIDDEN", Message: message})
}

// NotFound sends a 404 Not Found response
func (a *api) NotFound(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusNotFound, &Error{Code: "NOT_FOUND", Message: message})
}

// Conflict sends a 409 Conflict response
func (a *api) Conflict(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusConflict, &Error{Code: "CONFLICT", Message: message})
}

// UnprocessableEntity sends a 422 response with a business error code
func (a *api) UnprocessableEntity(ctx context.Context, w http.ResponseWriter, code, message string) {
	a.Error(ctx, w, http.StatusUnprocessableEntity, &Error{Code: code, Message: message})
}

// InternalServerError sends a 500 Internal Server Error response
func (a *api) InternalServerError(ctx context.Context, w http.ResponseWriter, message string) {
	a.Error(ctx, w, http.StatusInternalServerError, &Error{Code: "INTERNAL_SERVER_ERROR", Message: message})
}

// ValidationError sends a 422 Unprocessable Entity response with validation details
func (a *api) ValidationError(ctx context.Context, w http.ResponseWriter, details []ErrorDetail) {
	a.Error(ctx, w, http.StatusUnprocessableEntity, &Error{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
}

// DetailsFromMap converts validator output into error details. Order is not stable.
func DetailsFromMap(validationErrors map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}
