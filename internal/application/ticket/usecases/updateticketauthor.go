package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketAuthorCommand struct {
	TicketID uint
	Author   string
}

type UpdateTicketAuthorUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketAuthorUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketAuthorUseCase {
	return &UpdateTicketAuthorUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketAuthorUseCase) Execute(ctx context.Context, cmd UpdateTicketAuthorCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_author", func(_ context.Context, t *ticket.Ticket) error {
		return t.ChangeAuthor(cmd.Author)
	})
}
