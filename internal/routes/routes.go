package routes

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every API route on the engine. The public group
// carries no auth; the authed group requires a valid access token; the
// rate limiter covers only the credential endpoints.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, cfg *config.Config) {
	limiter := middleware.NewIPLimiter(
		float64(cfg.RateLimit.AuthPerMinute),
		cfg.RateLimit.AuthBurst,
	)
	limited := middleware.RateLimitMiddleware(limiter)

	public := router.Group("")
	authed := router.Group("", middleware.AuthMiddleware())

	h.Auth.RegisterRoutes(public, authed, limited)
	h.Job.RegisterRoutes(public, authed)
	h.Application.RegisterRoutes(authed)
	h.Admin.RegisterRoutes(authed)
}
