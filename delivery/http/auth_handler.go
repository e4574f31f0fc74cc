package http

import (
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	base
	// AuthUseCase contains business logic for authentication operations
	AuthUseCase usecase.AuthUseCase
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUseCase usecase.AuthUseCase, appLogger logger.LoggerInterface) *AuthHandler {
	return &AuthHandler{
		base:        newBase(appLogger),
		AuthUseCase: authUseCase,
	}
}

// LoginHandler handles HTTP requests for user login
// It expects an email or identifier plus the password in the request body
// Returns a 200 status code with a bare token pair on success
// Returns a 401 status code for invalid credentials and 403 for inactive users
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Login handler called")

	var req catalog.LoginRequest
	if !h.bind(w, r, &req, "login") {
		return
	}

	response, err := h.AuthUseCase.Login(ctx, req)
	if err != nil {
		h.Logger.WarnContext(ctx, "Login failed", "login", req.Login(), "error", err)
		h.fail(ctx, w, err, "Login failed")
		return
	}

	h.Logger.InfoContext(ctx, "Login successful")
	h.API.JSON(ctx, w, http.StatusOK, response)
}

// RegisterHandler handles HTTP requests for user registration
// Returns a 201 status code with the created user on success
// Returns a 409 status code when the email or phone is taken
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Register handler called")

	var req catalog.RegisterRequest
	if !h.bind(w, r, &req, "register") {
		return
	}

	user, err := h.AuthUseCase.Register(ctx, req)
	if err != nil {
		h.Logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		h.fail(ctx, w, err, "Registration failed")
		return
	}

	h.Logger.InfoContext(ctx, "User registered", "user_id", user.ID)
	h.API.Created(ctx, w, user)
}

// RefreshHandler handles HTTP requests for token refresh
// Returns a 200 status code with a new bare token pair on success
// Returns a 401 status code for invalid refresh token
func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Refresh token handler called")

	var req catalog.RefreshTokenRequest
	if !h.bind(w, r, &req, "refresh") {
		return
	}

	response, err := h.AuthUseCase.Refresh(ctx, req)
	if err != nil {
		h.Logger.WarnContext(ctx, "Token refresh failed", "error", err)
		h.fail(ctx, w, err, "Token refresh failed")
		return
	}

	h.Logger.InfoContext(ctx, "Token refresh successful")
	h.API.JSON(ctx, w, http.StatusOK, response)
}

// ProfileHandler returns the authenticated user's profile
// It must run behind JWTMiddleware
func (h *AuthHandler) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Profile handler called")

	profile, err := h.AuthUseCase.Profile(ctx)
	if err != nil {
		h.Logger.WarnContext(ctx, "Failed to get profile", "error", err)
		h.fail(ctx, w, err, "Failed to get profile")
		return
	}

	h.API.Success(ctx, w, profile)
}

// LogoutHandler revokes the caller's refresh tokens
// It must run behind JWTMiddleware
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Logout handler called")

	if err := h.AuthUseCase.Logout(ctx); err != nil {
		h.Logger.WarnContext(ctx, "Logout failed", "error", err)
		h.fail(ctx, w, err, "Logout failed")
		return
	}

	h.API.Message(ctx, w, "Logged out")
}
