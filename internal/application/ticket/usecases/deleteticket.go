package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

// DeleteTicketUseCase soft-deletes. Relation edges and child links are kept.
type DeleteTicketUseCase struct {
	updater ticketUpdater
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "delete", func(_ context.Context, t *ticket.Ticket) error {
		t.Delete()
		return nil
	})
}
