// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/studentshop/cart-service/config"
	"github.com/studentshop/cart-service/internal/circuitbreaker"
	"github.com/studentshop/cart-service/internal/repository"
	"github.com/studentshop/cart-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	CartSnapshots        repository.CartSnapshotStore
	OrdersRepo           repository.OrdersRepositoryInterface
	ProductsRepo         repository.ProductsRepositoryInterface
	LoggingService       service.LoggingService
	CartsCircuitBreaker  *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates required
// repositories and services. Returns nil if the database is disabled or the
// connection fails; the service then runs with file-based cart snapshots and
// no order persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	cartsRepo := repository.NewCartsRepository(db)
	cartsRepoWithCB := repository.NewCartsRepositoryWithCircuitBreaker(cartsRepo, cartsCB)

	ordersRepo := repository.NewOrdersRepository(db)
	productsRepo := repository.NewProductsRepository(db)

	// Seed the starter catalog into an empty database
	service.SeedDefaultProducts(context.Background(), productsRepo)

	return &DatabaseComponents{
		DB:                  db,
		CartSnapshots:       cartsRepoWithCB,
		OrdersRepo:          ordersRepo,
		ProductsRepo:        productsRepo,
		LoggingService:      loggingService,
		CartsCircuitBreaker: cartsCB,
		LogsCircuitBreaker:  logsCB,
	}
}
