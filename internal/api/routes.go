package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kurihiro0119/site-metrics/internal/telemetry"
)

// RouterConfig carries what the router needs besides the handler
type RouterConfig struct {
	APIKey     string
	APIKeyName string
	Logger     *zap.Logger
	Metrics    *telemetry.Metrics
}

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler, cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()

	// Middleware
	router.Use(Recovery(log))
	router.Use(RequestID())
	router.Use(CORS(cfg.APIKeyName))
	router.Use(Logger(log))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// Health check
	router.GET("/health", handler.HealthCheck)

	secured := router.Group("/", APIKey(cfg.APIKeyName, cfg.APIKey))
	{
		secured.GET("/cities", handler.GetCities)
		secured.GET("/pages_viewed", handler.GetPagesViewed)
		secured.GET("/visitors", handler.GetVisitors)
		secured.GET("/articles/:category", handler.GetArticles)
		secured.GET("/categories", handler.GetCategories)
	}

	return router
}
