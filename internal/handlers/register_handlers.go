package handlers

import (
	"strings"
	"sync"

	"github.com/golder/bank_statements_api/cmd/docs"
	"github.com/golder/bank_statements_api/internal/core/domain"
	portssvc "github.com/golder/bank_statements_api/internal/core/ports/services"
	"github.com/golder/bank_statements_api/internal/middleware"
	"github.com/golder/bank_statements_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding rules used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
				return domain.IsValidSlug(strings.ToLower(strings.TrimSpace(fl.Field().String())))
			})
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// A nil publicLimiter leaves the public endpoints unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	publicLimiter *limiter.Limiter,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupBankRoutes(r, services, publicLimiter)
	setupAdminRoutes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupBankRoutes configures the unauthenticated /bank group.
func setupBankRoutes(r *gin.Engine, services *portssvc.ServiceContainer, publicLimiter *limiter.Limiter) {
	bank := r.Group("/bank")
	if publicLimiter != nil {
		bank.Use(middleware.RateLimit(publicLimiter))
	}
	registerBankRoutes(bank, services)
}

// setupAdminRoutes configures the /admin group. An API key is tried first, then a bearer JWT.
func setupAdminRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	admin := r.Group("/admin",
		middleware.APIKeyAuth(cfg.AdminAPIKeyHash),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)
	registerAdminRoutes(admin, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
