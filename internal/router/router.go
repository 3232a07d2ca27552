package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/gabrieliussalyga/LLMtranscriptionNERproject/docs"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/handler"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/middleware"
	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/ui"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	extractionH *handler.ExtractionHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	api := r.Group("/api")
	api.GET("/health", healthH.Health)
	api.POST("/extract", extractionH.Extract)
	api.GET("/schema", extractionH.Schema)
	api.POST("/export", extractionH.Export)

	// Swagger UI
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Demo page
	ui.Register(r)

	return r
}
