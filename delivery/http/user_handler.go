package http

import (
	"net/http"
	"strconv"

	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	base
	// UserUseCase contains business logic for user operations
	UserUseCase usecase.UserUseCase
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userUseCase usecase.UserUseCase, appLogger logger.LoggerInterface) *UserHandler {
	return &UserHandler{
		base:        newBase(appLogger),
		UserUseCase: userUseCase,
	}
}

// ListHandler handles HTTP requests to list users with pagination
func (h *UserHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List users handler called")

	// Invalid values fall back to the use case defaults
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	users, total, err := h.UserUseCase.List(ctx, offset, limit)
	if err != nil {
		h.fail(ctx, w, err, "Failed to list users")
		return
	}

	h.API.Success(ctx, w, map[string]any{
		"users": users,
		"total": total,
	})
}
