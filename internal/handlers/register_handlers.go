package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/cmd/docs"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/SscSPs/currency_converter_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	writeLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	r.GET("/health", getHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupAPIRoutes(r, services, middleware.RateLimit(writeLimiter))

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	writeLimit gin.HandlerFunc,
) {
	api := r.Group("/api")

	registerConversionRoutes(api, services.Conversion, writeLimit)
	registerCurrencyRoutes(api, services.Currency)
	registerSampleRoutes(api, services.SampleItem)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
