package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tracklet-io/tracklet/internal/interfaces/http/handlers"
	"github.com/tracklet-io/tracklet/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // nil when Redis is not configured
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	login := []gin.HandlerFunc{cfg.AuthHandler.Login}
	if cfg.RateLimiter != nil {
		login = append([]gin.HandlerFunc{cfg.RateLimiter.Limit()}, login...)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", login...)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
