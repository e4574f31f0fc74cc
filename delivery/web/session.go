package web

import (
	"context"
	"net/http"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

const (
	TokenCookie        = "token"
	RefreshTokenCookie = "refresh_token"

	// LoginPath is where signed-out users land
	LoginPath = "/"
	// HomePath is where signed-in users land
	HomePath = "/dashboard/products"
)

// Cookies writes and clears the two session cookies
type Cookies struct {
	TokenMaxAge   time.Duration
	RefreshMaxAge time.Duration
	Secure        bool
}

// DefaultCookies keeps the access token one day and the refresh token seven
func DefaultCookies() Cookies {
	return Cookies{TokenMaxAge: 24 * time.Hour, RefreshMaxAge: 7 * 24 * time.Hour}
}

func (c Cookies) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Set stores a fresh token pair
func (c Cookies) Set(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, c.cookie(TokenCookie, accessToken, c.TokenMaxAge))
	http.SetCookie(w, c.cookie(RefreshTokenCookie, refreshToken, c.RefreshMaxAge))
}

// Clear removes both cookies
func (c Cookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{TokenCookie, RefreshTokenCookie} {
		cookie := c.cookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

type sessionKey struct{}

// sessionFrom returns the access token of the signed-in caller
func sessionFrom(ctx context.Context) string {
	token, _ := ctx.Value(sessionKey{}).(string)
	return token
}

// RequireSession sends callers without a token cookie back to the login
// page. Signed-in requests carry the token both as the session key and as
// the bearer token of every catalog call made with their context.
func RequireSession(appLogger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookieValue(r, TokenCookie)
			if token == "" {
				appLogger.InfoContext(r.Context(), "No session, redirecting to login", "path", r.URL.Path)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			ctx := httpclient.WithToken(r.Context(), token)
			ctx = context.WithValue(ctx, sessionKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
