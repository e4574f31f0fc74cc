package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/izaldotcom/gerbang-backoffice/domain/model"
	"github.com/izaldotcom/gerbang-backoffice/pkg/api"
	"github.com/izaldotcom/gerbang-backoffice/pkg/jwt"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

type Router struct {
	AuthHandler            *AuthHandler
	UserHandler            *UserHandler
	SupplierHandler        *SupplierHandler
	SupplierProductHandler *SupplierProductHandler
	ProductHandler         *ProductHandler
	RecipeHandler          *RecipeHandler
	OrderHandler           *OrderHandler
	HealthHandler          *HealthHandler
	JWTClient              jwt.JWTClient
	AppLogger              logger.LoggerInterface
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()
	apiClient := api.New()

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(LoggingMiddleware(r.AppLogger))
	router.Use(middleware.Heartbeat("/ping"))

	router.Get("/health", r.HealthHandler.HealthCheckHandler)

	// Public routes
	router.Post("/login", r.AuthHandler.LoginHandler)
	router.Post("/register", r.AuthHandler.RegisterHandler)
	router.Post("/auth/refresh", r.AuthHandler.RefreshHandler)

	// Seller API, authenticated by X-API-KEY inside the use case
	router.Post("/seller/order", r.OrderHandler.SubmitHandler)

	router.Group(func(authed chi.Router) {
		authed.Use(JWTMiddleware(r.JWTClient, r.AppLogger, apiClient))

		authed.Get("/auth/me", r.AuthHandler.ProfileHandler)
		authed.Post("/auth/logout", r.AuthHandler.LogoutHandler)

		authed.Get("/suppliers", r.SupplierHandler.ListHandler)
		authed.Get("/supplier-products", r.SupplierProductHandler.ListHandler)
		authed.Get("/products", r.ProductHandler.ListHandler)
		authed.Get("/products/{id}", r.ProductHandler.GetByIDHandler)
		authed.Get("/recipes", r.RecipeHandler.ListHandler)

		authed.Group(func(admin chi.Router) {
			admin.Use(RequireRole(model.RoleAdmin, r.AppLogger, apiClient))

			admin.Get("/users", r.UserHandler.ListHandler)

			admin.Post("/suppliers", r.SupplierHandler.CreateHandler)
			admin.Put("/suppliers/{id}", r.SupplierHandler.UpdateHandler)
			admin.Delete("/suppliers/{id}", r.SupplierHandler.DeleteHandler)

			admin.Post("/supplier-products", r.SupplierProductHandler.CreateHandler)
			admin.Put("/supplier-products/{id}", r.SupplierProductHandler.UpdateHandler)
			admin.Delete("/supplier-products/{id}", r.SupplierProductHandler.DeleteHandler)

			// Mutations are singular and take ?id=, reads stay plural
			admin.Post("/product", r.ProductHandler.CreateHandler)
			admin.Put("/product", r.ProductHandler.UpdateHandler)
			admin.Delete("/product", r.ProductHandler.DeleteHandler)

			admin.Post("/recipes", r.RecipeHandler.CreateHandler)
			admin.Put("/recipes", r.RecipeHandler.UpdateHandler)
			admin.Put("/recipes/replace", r.RecipeHandler.ReplaceHandler)
			admin.Delete("/recipes/{id}", r.RecipeHandler.DeleteHandler)
		})
	})

	return router
}
