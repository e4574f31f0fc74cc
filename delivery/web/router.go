package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

type Router struct {
	AuthHandler    *AuthHandler
	ScreenHandler  *ScreenHandler
	CatalogHandler *CatalogHandler
	RecipeHandler  *RecipeHandler
	OrderHandler   *OrderHandler
	AppLogger      logger.LoggerInterface
}

// RequestLogger logs each request once it has been answered
func RequestLogger(appLogger logger.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			appLogger.InfoContext(r.Context(), "HTTP request completed",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	}
}

func (r *Router) SetupRoutes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(RequestLogger(r.AppLogger))
	router.Use(middleware.Heartbeat("/ping"))

	// Public routes
	router.Get(LoginPath, r.AuthHandler.IndexHandler)
	router.Post("/login", r.AuthHandler.LoginHandler)
	router.Post("/register", r.AuthHandler.RegisterHandler)
	router.Post("/logout", r.AuthHandler.LogoutHandler)
	router.Post("/auth/refresh", r.AuthHandler.RefreshHandler)

	router.Route("/dashboard", func(dash chi.Router) {
		dash.Use(RequireSession(r.AppLogger))

		dash.Get("/", r.ScreenHandler.SummaryHandler)
		dash.Get("/session", r.ScreenHandler.SessionHandler)
		dash.Get("/users", r.ScreenHandler.UsersHandler)

		dash.Get("/suppliers", r.ScreenHandler.SuppliersHandler)
		dash.Post("/suppliers", r.CatalogHandler.CreateSupplierHandler)
		dash.Put("/suppliers/{id}", r.CatalogHandler.UpdateSupplierHandler)
		dash.Delete("/suppliers/{id}", r.CatalogHandler.DeleteSupplierHandler)

		dash.Get("/suppliers/products", r.ScreenHandler.SupplierProductsHandler)
		dash.Post("/suppliers/products", r.CatalogHandler.CreateSupplierProductHandler)
		dash.Put("/suppliers/products/{id}", r.CatalogHandler.UpdateSupplierProductHandler)
		dash.Delete("/suppliers/products/{id}", r.CatalogHandler.DeleteSupplierProductHandler)

		dash.Get("/products", r.ScreenHandler.ProductsHandler)
		dash.Post("/products", r.CatalogHandler.CreateProductHandler)
		dash.Put("/products/{id}", r.CatalogHandler.UpdateProductHandler)
		dash.Delete("/products/{id}", r.CatalogHandler.DeleteProductHandler)

		dash.Get("/recipes", r.ScreenHandler.RecipesHandler)
		dash.Post("/recipes", r.RecipeHandler.CreateHandler)
		dash.Put("/recipes/{id}", r.RecipeHandler.UpdateHandler)
		dash.Put("/recipes/products/{productID}", r.RecipeHandler.ReplaceHandler)
		dash.Delete("/recipes/{id}", r.RecipeHandler.DeleteHandler)

		dash.Get("/transactions", r.ScreenHandler.TransactionHandler)
		dash.Post("/transactions", r.OrderHandler.SubmitHandler)
	})

	return router
}
