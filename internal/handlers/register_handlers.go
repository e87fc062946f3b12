package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/middleware"
	"github.com/facturly/facturly-backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	RegisterCustomValidators()

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/api/health", getAPIHealth)

	// Uploaded logos are served as static files.
	r.Static("/uploads", cfg.UploadsDir)

	registerAuthRoutes(r, cfg, services.User)
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the entity route registrations. The whole group sits behind a per-IP
// rate limit; login carries its own tighter limit on top.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	rate, err := limiter.NewRateFromFormatted(cfg.APIRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	apiLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(apiLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User, cfg)
	registerClientRoutes(v1, services.Client)
	registerInvoiceRoutes(v1, services.Invoice)
	registerDashboardRoutes(v1, services.Reporting)
}
