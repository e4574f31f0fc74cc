// Package main is the entry point of the catalog service.
// It wires postgres, redis and kafka behind the catalog HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/config"
	httpDelivery "github.com/izaldotcom/gerbang-backoffice/delivery/http"
	"github.com/izaldotcom/gerbang-backoffice/pkg/jwt"
	"github.com/izaldotcom/gerbang-backoffice/pkg/kafka"
	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
	"github.com/izaldotcom/gerbang-backoffice/pkg/postgres"
	"github.com/izaldotcom/gerbang-backoffice/pkg/redis"
	kafkaRepository "github.com/izaldotcom/gerbang-backoffice/repository/kafka"
	pgRepository "github.com/izaldotcom/gerbang-backoffice/repository/postgres"
	redisRepository "github.com/izaldotcom/gerbang-backoffice/repository/redis"
	"github.com/izaldotcom/gerbang-backoffice/usecase"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		logger.NewJSONDefault().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// configure logger
	appLogger := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Output: os.Stdout,
		Format: cfg.Logging.Format,
	})

	// Initialize PostgreSQL client
	pg := cfg.Infrastructure.Postgres
	postgresClient, err := postgres.NewPostgresClient(postgres.Config{
		Host:            pg.Host,
		Port:            pg.Port,
		User:            pg.User,
		Password:        pg.Password,
		DBName:          pg.DBName,
		Schema:          pg.Schema,
		SSLMode:         pg.SSLMode,
		MaxIdleConns:    pg.MaxIdleConns,
		MaxOpenConns:    pg.MaxOpenConns,
		ConnMaxIdleTime: pg.ConnMaxIdleTime,
		ConnMaxLifetime: pg.ConnMaxLifetime,
		Debug:           pg.Debug,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if pg.IsUseMigrate {
		if err := postgresClient.Migrate(pgRepository.Models()...); err != nil {
			appLogger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize Redis client
	redisClient, err := redis.NewWithConfig(cfg.Infrastructure.Redis)
	if err != nil {
		appLogger.Error("Failed to initialize Redis client", "error", err)
		os.Exit(1)
	}

	// Initialize Kafka client
	kafkaClient, err := kafka.NewWithConfig(cfg.Infrastructure.Kafka.Config, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize Kafka client", "error", err)
		os.Exit(1)
	}

	// Initialize JWT client; stateful mode keeps refresh tokens in Redis
	var tokenStore jwt.RefreshTokenStore
	if cfg.Security.JWT.Stateful {
		tokenStore = jwt.NewRedisStore(redisClient)
	}
	jwtClient, err := jwt.NewWithConfig(jwt.TokenConfig{
		AccessTokenSecret:  cfg.Security.JWT.AccessSecret,
		RefreshTokenSecret: cfg.Security.JWT.RefreshSecret,
		AccessTokenExpiry:  cfg.Security.JWT.AccessExpiry,
		RefreshTokenExpiry: cfg.Security.JWT.RefreshExpiry,
		Stateful:           cfg.Security.JWT.Stateful,
	}, tokenStore)
	if err != nil {
		appLogger.Error("Failed to initialize JWT client", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	roleRepo := pgRepository.NewRoleRepository(db, appLogger)
	userRepo := pgRepository.NewUserRepository(db, appLogger)
	supplierRepo := pgRepository.NewSupplierRepository(db, appLogger)
	supplierProductRepo := pgRepository.NewSupplierProductRepository(db, appLogger)
	productRepo := pgRepository.NewProductRepository(db, appLogger)
	recipeRepo := pgRepository.NewRecipeItemRepository(db, appLogger)
	trxRepo := pgRepository.NewTransactionRepository(db, appLogger)
	transactor := pgRepository.NewTransactor(db, appLogger)
	profiles := redisRepository.NewProfileCache(redisClient, cfg.Cache.ProfileTTL, appLogger)
	publisher := kafkaRepository.NewOrderPublisher(kafkaClient, cfg.Infrastructure.Kafka.Topics.OrderCreated, appLogger)

	// Initialize usecases
	authUsecase := usecase.NewAuthUseCase(userRepo, roleRepo, profiles, jwtClient, appLogger)
	userUsecase := usecase.NewUserUseCase(userRepo, appLogger)
	supplierUsecase := usecase.NewSupplierUseCase(supplierRepo, appLogger)
	supplierProductUsecase := usecase.NewSupplierProductUseCase(supplierRepo, supplierProductRepo, appLogger)
	productUsecase := usecase.NewProductUseCase(supplierRepo, productRepo, appLogger)
	recipeUsecase := usecase.NewRecipeUseCase(productRepo, supplierProductRepo, recipeRepo, transactor, appLogger)
	orderUsecase := usecase.NewOrderUseCase(usecase.OrderConfig{
		APIKey: cfg.Security.Seller.APIKey,
		Seller: cfg.Security.Seller.Name,
	}, productRepo, recipeRepo, trxRepo, publisher, appLogger)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	err = authUsecase.SeedRoles(seedCtx)
	cancelSeed()
	if err != nil {
		appLogger.Error("Failed to seed roles", "error", err)
		os.Exit(1)
	}

	// Initialize router
	router := &httpDelivery.Router{
		AuthHandler:            httpDelivery.NewAuthHandler(authUsecase, appLogger),
		UserHandler:            httpDelivery.NewUserHandler(userUsecase, appLogger),
		SupplierHandler:        httpDelivery.NewSupplierHandler(supplierUsecase, appLogger),
		SupplierProductHandler: httpDelivery.NewSupplierProductHandler(supplierProductUsecase, appLogger),
		ProductHandler:         httpDelivery.NewProductHandler(productUsecase, appLogger),
		RecipeHandler:          httpDelivery.NewRecipeHandler(recipeUsecase, appLogger),
		OrderHandler:           httpDelivery.NewOrderHandler(orderUsecase, appLogger),
		HealthHandler: httpDelivery.NewHealthHandler(map[string]httpDelivery.Pinger{
			"postgres": postgresClient,
			"redis":    redisClient,
			"kafka":    kafkaClient,
		}, appLogger),
		JWTClient: jwtClient,
		AppLogger: appLogger,
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := kafkaClient.Close(); err != nil {
		appLogger.Warn("Error closing kafka client", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warn("Error closing redis client", "error", err)
	}
	if err := postgresClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}

	appLogger.Info("Server exited")
}
