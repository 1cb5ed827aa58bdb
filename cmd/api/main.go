package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/handlers"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/repositories"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/modules/dashboard/services"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/database"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/middleware"
	"github.com/MuhamadAgungGumelar/ecommerce-analytics-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/ecommerce-analytics-be/cmd/api/docs"
)

// @title E-commerce Analytics API
// @version 1.0
// @description KPI, sales and catalog endpoints backing the e-commerce analytics dashboard
// @contact.name API Support
// @license.name MIT
// @host localhost:3001
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("🚀 Starting analytics api")

	// Init database
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to connect to database")
	}
	defer db.Close()

	// Init repositories (use GORM instance)
	analyticsRepo := repositories.NewAnalyticsRepo(db.GORM)
	productRepo := repositories.NewProductRepo(db.GORM)
	orderRepo := repositories.NewOrderRepo(db.GORM, cfg.Location())

	// Init services
	aggregator := analytics.NewAggregator(analyticsRepo, cfg.Location())
	analyticsService := services.NewAnalyticsService(aggregator, export.NewService())
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo)

	// Init handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	productHandler := handlers.NewProductHandler(productService, analyticsService)
	orderHandler := handlers.NewOrderHandler(orderService)
	healthHandler := handlers.NewHealthHandler(db)

	app := fiber.New(fiber.Config{
		AppName:     "E-commerce Analytics API",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ReadTimeout: cfg.RequestTimeout,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowMethods: "GET,OPTIONS",
	}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	// Ops
	app.Get("/health", healthHandler.GetHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	api := app.Group("/api")
	handlers.RegisterRoutes(api, analyticsHandler, productHandler, orderHandler)

	app.Use(middleware.NotFound())

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("❌ Server stopped")
		}
	}()
	log.Info().Msgf("✅ API running at :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Graceful shutdown failed")
	}
}
