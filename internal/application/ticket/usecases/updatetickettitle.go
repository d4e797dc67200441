package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketTitleCommand struct {
	TicketID uint
	Title    string
}

type UpdateTicketTitleUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketTitleUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketTitleUseCase {
	return &UpdateTicketTitleUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketTitleUseCase) Execute(ctx context.Context, cmd UpdateTicketTitleCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_title", func(_ context.Context, t *ticket.Ticket) error {
		return t.ChangeTitle(cmd.Title)
	})
}
