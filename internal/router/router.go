package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"zollkie/internal/handler"
	"zollkie/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	documentH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Document extraction routes
	documents := v1.Group("/documents")
	documents.POST("/upload", documentH.Upload)
	documents.GET("/:id", documentH.GetJob)
	documents.POST("/:id/extract", documentH.Extract)
	documents.GET("/:id/results", documentH.GetResults)
	documents.GET("/:id/export/csv", documentH.ExportCSV)

	return r
}
