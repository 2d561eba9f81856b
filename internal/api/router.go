// Package api wires the HTTP routes to their handlers.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/printcraft-dev/printcraft/internal/api/handlers"
	"github.com/printcraft-dev/printcraft/internal/config"
	"github.com/printcraft-dev/printcraft/internal/store"
)

// NewRouter creates and configures the Gin router. The store is passed
// explicitly: handlers hold no ambient state.
func NewRouter(cfg *config.Config, s store.Store) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Initialize handlers
	templateHandler := handlers.NewTemplateHandler(s)
	designHandler := handlers.NewDesignHandler(s)
	orderHandler := handlers.NewPrintOrderHandler(s)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Template catalog (read-only)
		api.GET("/templates", templateHandler.ListTemplates)
		api.GET("/templates/:id", templateHandler.GetTemplate)

		// Design lifecycle
		api.POST("/designs", designHandler.CreateDesign)
		api.GET("/designs", designHandler.ListDesigns)
		api.GET("/designs/:id", designHandler.GetDesign)
		api.PUT("/designs/:id", designHandler.UpdateDesign)
		api.DELETE("/designs/:id", designHandler.DeleteDesign)
		api.POST("/designs/:id/pdf", designHandler.GeneratePDF)

		// Print orders
		api.POST("/print-orders", orderHandler.CreatePrintOrder)
		api.GET("/print-orders", orderHandler.ListPrintOrders)
		api.GET("/print-orders/:id", orderHandler.GetPrintOrder)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers for the browser client
func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
