package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// UpdateTicketParentCommand sets the parent, or clears it when ParentID is nil.
type UpdateTicketParentCommand struct {
	TicketID uint
	ParentID *uint
}

type UpdateTicketParentUseCase struct {
	ticketRepo ticket.Repository
	updater    ticketUpdater
}

func NewUpdateTicketParentUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketParentUseCase {
	return &UpdateTicketParentUseCase{
		ticketRepo: ticketRepo,
		updater:    newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketParentUseCase) Execute(ctx context.Context, cmd UpdateTicketParentCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_parent", func(txCtx context.Context, t *ticket.Ticket) error {
		if cmd.ParentID != nil {
			if err := requireTicket(txCtx, uc.ticketRepo, *cmd.ParentID); err != nil {
				return err
			}
		}
		return t.ChangeParentID(cmd.ParentID)
	})
}
