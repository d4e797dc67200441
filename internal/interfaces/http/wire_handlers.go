package http

import (
	"github.com/tracklet-io/tracklet/internal/interfaces/http/handlers"
	ticketHandlers "github.com/tracklet-io/tracklet/internal/interfaces/http/handlers/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler   *handlers.AuthHandler
	healthHandler *handlers.HealthHandler
	ticketHandler *ticketHandlers.TicketHandler
}

func newHandlers(ucs *allUseCases, pinger handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		authHandler:   handlers.NewAuthHandler(ucs.loginUC, ucs.getCurrentUserUC, log.Named("auth")),
		healthHandler: handlers.NewHealthHandler(pinger, log.Named("health")),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.updateTicketUC,
			ucs.updateTitleUC,
			ucs.updateDescriptionUC,
			ucs.updateAuthorUC,
			ucs.updateAssigneeUC,
			ucs.updatePriorityUC,
			ucs.updateStatusUC,
			ucs.updateParentUC,
			ucs.deleteTicketUC,
			ucs.addRelationsUC,
			ucs.deleteRelationsUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			log.Named("ticket"),
		),
	}
}
