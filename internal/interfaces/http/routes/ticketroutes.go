package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/tracklet-io/tracklet/internal/interfaces/http/handlers/ticket"
	"github.com/tracklet-io/tracklet/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/ticket")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("/filter", config.TicketHandler.ListTickets)
		tickets.POST("/create", config.TicketHandler.CreateTicket)

		tickets.PUT("/status/:id", config.TicketHandler.UpdateTicketStatus)
		tickets.PUT("/priority/:id", config.TicketHandler.UpdateTicketPriority)
		tickets.PUT("/executor/:id", config.TicketHandler.UpdateTicketAssignee)
		tickets.PUT("/author/:id", config.TicketHandler.UpdateTicketAuthor)
		tickets.PUT("/header/:id", config.TicketHandler.UpdateTicketTitle)
		tickets.PUT("/description/:id", config.TicketHandler.UpdateTicketDescription)
		tickets.PUT("/parent/:id", config.TicketHandler.UpdateTicketParent)
		tickets.PUT("/relates-to/add/:id", config.TicketHandler.AddRelations)
		tickets.PUT("/relates-to/delete/:id", config.TicketHandler.DeleteRelations)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
