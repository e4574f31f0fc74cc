package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// Pinger is any backing service the health check probes
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles HTTP requests for health check operations
type HealthHandler struct {
	base
	// Dependencies are probed by name on every check
	Dependencies map[string]Pinger
	Timeout      time.Duration
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(dependencies map[string]Pinger, appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		base:         newBase(appLogger),
		Dependencies: dependencies,
		Timeout:      2 * time.Second,
	}
}

// HealthCheckHandler reports the service and its dependencies
// Returns a 200 status code when every dependency answers
// Returns a 503 status code otherwise
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	h.Logger.InfoContext(ctx, "Health check endpoint called")

	names := make([]string, 0, len(h.Dependencies))
	for name := range h.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx, h.Timeout)
		err := h.Dependencies[name].Ping(pingCtx)
		cancel()
		if err != nil {
			h.Logger.ErrorContext(ctx, "Dependency unhealthy", "dependency", name, "error", err)
			checks[name] = "down"
			healthy = false
			continue
		}
		checks[name] = "up"
	}

	if !healthy {
		h.API.Error(ctx, w, http.StatusServiceUnavailable, &api.Error{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "Service is degraded",
		})
		return
	}

	h.API.Success(ctx, w, map[string]any{
		"status":  "healthy",
		"message": "Service is running",
		"checks":  checks,
	})
}
