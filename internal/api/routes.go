package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/digest-curator/internal/telemetry"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler, tel *telemetry.Provider) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	if tel != nil {
		router.GET("/metrics", gin.WrapH(tel.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		curate := v1.Group("/curate")
		{
			curate.POST("", handler.Curate)                // POST /api/v1/curate
			curate.POST("/preview", handler.CuratePreview) // POST /api/v1/curate/preview
		}

		v1.GET("/taxonomy", handler.GetTaxonomy) // GET /api/v1/taxonomy
	}
}
