package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/izaldotcom/gerbang-backoffice/domain"
	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/jwt"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// LoggingMiddleware logs method, path, status and duration of each request
func LoggingMiddleware(appLogger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			appLogger.InfoContext(r.Context(), "HTTP request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

// JWTMiddleware validates the bearer access token and stores the caller's
// principal in the request context. Missing or invalid tokens get a 401.
func JWTMiddleware(jwtClient jwt.JWTClient, appLogger logger.LoggerInterface, apiClient api.Api) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				appLogger.WarnContext(ctx, "Missing Authorization header")
				apiClient.Unauthorized(ctx, w, "Missing Authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
			if !found || tokenString == "" {
				appLogger.WarnContext(ctx, "Invalid Authorization header format")
				apiClient.Unauthorized(ctx, w, "Invalid Authorization header format")
				return
			}

			claims, err := jwtClient.ValidateAccessToken(tokenString)
			if err != nil {
				appLogger.WarnContext(ctx, "Invalid access token", "error", err)
				apiClient.Unauthorized(ctx, w, "Invalid access token")
				return
			}

			ctx = domain.WithPrincipal(ctx, domain.Principal{UserID: claims.UserID, RoleName: claims.RoleName})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole lets the request through only when the principal carries the
// given role. It must run after JWTMiddleware.
func RequireRole(role string, appLogger logger.LoggerInterface, apiClient api.Api) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			principal, ok := domain.PrincipalFromContext(ctx)
			if !ok || principal.RoleName != role {
				appLogger.WarnContext(ctx, "Access denied: role does not match", "role", principal.RoleName, "required_role", role)
				apiClient.Forbidden(ctx, w, "Access denied: insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
