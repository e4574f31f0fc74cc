package web

import (
	"context"
	"net/http"

	"github.com/izaldotcom/gerbang-backoffice/contracts/catalog"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// AuthClient is the public part of the catalog the sign-in screens use
type AuthClient interface {
	Login(ctx context.Context, req catalog.LoginRequest) (*catalog.LoginResponse, error)
	Register(ctx context.Context, req catalog.RegisterRequest) (*catalog.UserResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*catalog.LoginResponse, error)
	// Logout revokes the refresh tokens of the token carried by ctx
	Logout(ctx context.Context) error
}

// AuthHandler signs users in and out
type AuthHandler struct {
	base
	auth AuthClient
}

func NewAuthHandler(auth AuthClient, store dashboard.CatalogStore, workspaces *dashboard.Workspaces, cookies Cookies, appLogger logger.LoggerInterface) *AuthHandler {
	return &AuthHandler{base: newBase(store, workspaces, cookies, appLogger), auth: auth}
}

// IndexHandler is the login page. Signed-in users go straight to the
// dashboard.
func (h *AuthHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if cookieValue(r, TokenCookie) != "" {
		http.Redirect(w, r, HomePath, http.StatusFound)
		return
	}
	h.API.Message(r.Context(), w, "Please sign in")
}

// LoginHandler exchanges credentials for the session cookies
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req catalog.LoginRequest
	if !h.bind(w, r, &req, "login") {
		return
	}

	h.Logger.InfoContext(ctx, "Login attempt", "login", req.Login())

	tokens, err := h.auth.Login(ctx, req)
	if err != nil {
		h.respond(ctx, w, err, "Failed to sign in")
		return
	}

	h.Cookies.Set(w, tokens.AccessToken, tokens.RefreshToken)
	h.API.Success(ctx, w, map[string]string{"redirect": HomePath})
}

// RegisterHandler creates an account and points the browser at the login page
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req catalog.RegisterRequest
	if !h.bind(w, r, &req, "register") {
		return
	}

	h.Logger.InfoContext(ctx, "Registering user", "email", req.Email)

	user, err := h.auth.Register(ctx, req)
	if err != nil {
		h.respond(ctx, w, err, "Failed to register")
		return
	}

	h.API.Created(ctx, w, map[string]any{"user": user, "redirect": LoginPath})
}

// RefreshHandler renews the cookies from the refresh token cookie
func (h *AuthHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken := cookieValue(r, RefreshTokenCookie)
	if refreshToken == "" {
		h.Cookies.Clear(w)
		h.API.JSON(ctx, w, http.StatusUnauthorized, redirectResponse{Status: api.StatusError, Message: "Session expired", Redirect: LoginPath})
		return
	}

	tokens, err := h.auth.Refresh(ctx, refreshToken)
	if err != nil {
		h.fail(w, r, err, "Failed to refresh session")
		return
	}

	h.Workspaces.Drop(cookieValue(r, TokenCookie))
	h.Cookies.Set(w, tokens.AccessToken, tokens.RefreshToken)
	h.API.Success(ctx, w, map[string]string{"redirect": HomePath})
}

// LogoutHandler revokes the session's refresh tokens, removes both cookies
// and forgets the session's screens. A failed revoke still signs out.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := cookieValue(r, TokenCookie)
	if token != "" {
		if err := h.auth.Logout(httpclient.WithToken(ctx, token)); err != nil {
			h.Logger.WarnContext(ctx, "Failed to revoke refresh tokens", "error", err)
		}
	}

	h.Workspaces.Drop(token)
	h.Cookies.Clear(w)

	h.Logger.InfoContext(ctx, "Signed out")
	h.API.Success(ctx, w, map[string]string{"redirect": LoginPath})
}
