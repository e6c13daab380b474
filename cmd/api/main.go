package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/kurihiro0119/site-metrics/internal/api"
	"github.com/kurihiro0119/site-metrics/internal/config"
	"github.com/kurihiro0119/site-metrics/internal/generator"
	"github.com/kurihiro0119/site-metrics/internal/logger"
	"github.com/kurihiro0119/site-metrics/internal/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("Invalid configuration", zap.Error(err))
	}

	// Initialize generator
	gen, err := generator.New(generator.Config{
		MinVisitors: cfg.MinVisitors,
		MaxVisitors: cfg.MaxVisitors,
	})
	if err != nil {
		zlog.Fatal("Failed to initialize generator", zap.Error(err))
	}

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.New(reg)

	// Initialize handler
	handler := api.NewHandler(gen, metrics, cfg.ExampleDefaults)

	// Setup routes
	gin.SetMode(gin.ReleaseMode)
	router := api.SetupRoutes(handler, api.RouterConfig{
		APIKey:     cfg.APIKey,
		APIKeyName: cfg.APIKeyName,
		Logger:     zlog,
		Metrics:    metrics,
	})

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	zlog.Info("Starting API server",
		zap.String("addr", addr),
		zap.String("api_key_header", cfg.APIKeyName),
		zap.Int("min_visitors", cfg.MinVisitors),
		zap.Int("max_visitors", cfg.MaxVisitors),
	)

	if err := router.Run(addr); err != nil {
		zlog.Error("Failed to start server", zap.Error(err))
		os.Exit(1)
	}
}
