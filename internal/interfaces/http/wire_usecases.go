package http

import (
	"gorm.io/gorm"

	ticketUsecases "github.com/tracklet-io/tracklet/internal/application/ticket/usecases"
	userUsecases "github.com/tracklet-io/tracklet/internal/application/user/usecases"
	"github.com/tracklet-io/tracklet/internal/infrastructure/auth"
	"github.com/tracklet-io/tracklet/internal/infrastructure/config"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/services/markdown"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket commands
	createTicketUC      *ticketUsecases.CreateTicketUseCase
	updateTicketUC      *ticketUsecases.UpdateTicketUseCase
	updateTitleUC       *ticketUsecases.UpdateTicketTitleUseCase
	updateDescriptionUC *ticketUsecases.UpdateTicketDescriptionUseCase
	updateAuthorUC      *ticketUsecases.UpdateTicketAuthorUseCase
	updateAssigneeUC    *ticketUsecases.UpdateTicketAssigneeUseCase
	updatePriorityUC    *ticketUsecases.UpdateTicketPriorityUseCase
	updateStatusUC      *ticketUsecases.UpdateTicketStatusUseCase
	updateParentUC      *ticketUsecases.UpdateTicketParentUseCase
	deleteTicketUC      *ticketUsecases.DeleteTicketUseCase
	addRelationsUC      *ticketUsecases.AddRelationsUseCase
	deleteRelationsUC   *ticketUsecases.DeleteRelationsUseCase

	// Ticket queries
	getTicketUC   *ticketUsecases.GetTicketUseCase
	listTicketsUC *ticketUsecases.ListTicketsUseCase

	// Auth
	loginUC          *userUsecases.LoginUseCase
	getCurrentUserUC *userUsecases.GetCurrentUserUseCase
}

func newUseCases(
	repos *repositories,
	gdb *gorm.DB,
	cfg *config.Config,
	jwtSvc *auth.JWTService,
	log logger.Interface,
) *allUseCases {
	txMgr := db.NewTransactionManager(gdb)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	return &allUseCases{
		createTicketUC:      ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, txMgr, log),
		updateTicketUC:      ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, txMgr, log),
		updateTitleUC:       ticketUsecases.NewUpdateTicketTitleUseCase(repos.ticketRepo, txMgr, log),
		updateDescriptionUC: ticketUsecases.NewUpdateTicketDescriptionUseCase(repos.ticketRepo, txMgr, log),
		updateAuthorUC:      ticketUsecases.NewUpdateTicketAuthorUseCase(repos.ticketRepo, txMgr, log),
		updateAssigneeUC:    ticketUsecases.NewUpdateTicketAssigneeUseCase(repos.ticketRepo, txMgr, log),
		updatePriorityUC:    ticketUsecases.NewUpdateTicketPriorityUseCase(repos.ticketRepo, txMgr, log),
		updateStatusUC:      ticketUsecases.NewUpdateTicketStatusUseCase(repos.ticketRepo, txMgr, log),
		updateParentUC:      ticketUsecases.NewUpdateTicketParentUseCase(repos.ticketRepo, txMgr, log),
		deleteTicketUC:      ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, txMgr, log),
		addRelationsUC:      ticketUsecases.NewAddRelationsUseCase(repos.ticketRepo, repos.relationRepo, txMgr, log),
		deleteRelationsUC:   ticketUsecases.NewDeleteRelationsUseCase(repos.ticketRepo, repos.relationRepo, txMgr, log),

		getTicketUC:   ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, markdown.NewRenderer(), log),
		listTicketsUC: ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log),

		loginUC:          userUsecases.NewLoginUseCase(repos.userRepo, hasher, jwtSvc, log),
		getCurrentUserUC: userUsecases.NewGetCurrentUserUseCase(repos.userRepo, log),
	}
}
