package http

import (
	"github.com/tracklet-io/tracklet/internal/interfaces/http/middleware"
	"github.com/tracklet-io/tracklet/internal/interfaces/http/routes"
	"github.com/tracklet-io/tracklet/internal/shared/constants"
)

// SetupRoutes installs the global middleware chain and every route.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.hdlrs.healthHandler.Health)

	api := c.engine.Group(constants.APIVersionPrefix)
	api.GET("/health", c.hdlrs.healthHandler.Health)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  c.hdlrs.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
