package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/monibBormon/carhouse/config"
	handler "github.com/monibBormon/carhouse/internal/handler/http"
	"github.com/monibBormon/carhouse/internal/middleware"
	"github.com/monibBormon/carhouse/internal/payment"
	"github.com/monibBormon/carhouse/internal/repository"
	"github.com/monibBormon/carhouse/internal/repository/mongodb"
	"github.com/monibBormon/carhouse/internal/service"
	"go.uber.org/zap"
)

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := mongodb.New(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close(ctx)

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	// dependency injection
	// catalog
	carRepo := repository.NewCarRepository(db)
	catalogService := service.NewCatalogService(carRepo)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// orders
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo)
	orderHandler := handler.NewOrderHandler(orderService)

	// users
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	// ratings
	ratingRepo := repository.NewRatingRepository(db)
	ratingService := service.NewRatingService(ratingRepo)
	ratingHandler := handler.NewRatingHandler(ratingService)

	// payment
	paymentClient := payment.NewClient("", cfg.StripeSecretKey)
	paymentService := service.NewPaymentService(paymentClient)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Get("/", handler.Health())

	router.Get("/products", catalogHandler.ListCars())
	router.Get("/products/{id}", catalogHandler.GetCar())

	router.Post("/orders", orderHandler.CreateOrder())
	router.Get("/orders", orderHandler.ListOrders())
	router.Get("/payment/{id}", orderHandler.GetOrderForPayment())
	router.Put("/payment/{id}", orderHandler.RecordPayment())

	router.Post("/users", userHandler.CreateUser())
	router.Put("/users", userHandler.UpsertUser())
	router.Get("/users/{email}", userHandler.CheckAdmin())

	router.Post("/rating", ratingHandler.CreateRating())
	router.Get("/rating", ratingHandler.ListRatings())

	router.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent())

	// routes that require the admin capability
	router.Group(func(group chi.Router) {
		group.Use(handler.RequireAdmin(userService))
		group.Post("/products", catalogHandler.CreateCar())
		group.Delete("/delete/{id}", catalogHandler.DeleteCar())
		group.Get("/all-orders", orderHandler.ListAllOrders())
		group.Delete("/delete-order/{id}", orderHandler.DeleteOrder())
		group.Put("/updateStatus/{id}", orderHandler.ApproveOrder())
		group.Put("/updateStatus1/{id}", orderHandler.DispatchOrder())
		group.Put("/users/admin", userHandler.PromoteAdmin())
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
