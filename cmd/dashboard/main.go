// Package main is the entry point of the dashboard.
// It serves the admin screens and talks to the catalog service over HTTP.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/catalogclient"
	"github.com/izaldotcom/gerbang-backoffice/config"
	"github.com/izaldotcom/gerbang-backoffice/dashboard"
	"github.com/izaldotcom/gerbang-backoffice/delivery/web"
	"github.com/izaldotcom/gerbang-backoffice/pkg/httpclient"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadDashboardConfig()
	if err != nil {
		logger.NewJSONDefault().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Output: os.Stdout,
		Format: cfg.Logging.Format,
	})

	// Catalog client
	catalogHTTP := httpclient.New(
		httpclient.WithBaseURL(cfg.Catalog.BaseURL),
		httpclient.WithTimeout(cfg.Catalog.Timeout),
		httpclient.WithLogger(appLogger),
	)
	store := catalogclient.New(catalogHTTP, cfg.Catalog.APIKey, appLogger)

	workspaces := dashboard.NewWorkspaces(cfg.Session.IdleTimeout)
	cookies := web.Cookies{
		TokenMaxAge:   cfg.Session.TokenMaxAge,
		RefreshMaxAge: cfg.Session.RefreshMaxAge,
		Secure:        cfg.Session.Secure,
	}

	router := &web.Router{
		AuthHandler:    web.NewAuthHandler(store, store, workspaces, cookies, appLogger),
		ScreenHandler:  web.NewScreenHandler(store, workspaces, cookies, appLogger),
		CatalogHandler: web.NewCatalogHandler(store, workspaces, cookies, appLogger),
		RecipeHandler:  web.NewRecipeHandler(store, workspaces, cookies, appLogger),
		OrderHandler:   web.NewOrderHandler(store, workspaces, cookies, appLogger),
		AppLogger:      appLogger,
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go sweep(sweepCtx, workspaces, cfg.Session.SweepInterval, appLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version,
			"port", cfg.Server.Port, "catalog", catalogHTTP.BaseURL())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Server exited")
}

// sweep forgets idle session workspaces every interval until ctx ends
func sweep(ctx context.Context, workspaces *dashboard.Workspaces, interval time.Duration, appLogger logger.LoggerInterface) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := workspaces.Sweep(); n > 0 {
				appLogger.Debug("Dropped idle sessions", "count", n, "active", workspaces.Len())
			}
		}
	}
}
