package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketDescriptionCommand struct {
	TicketID    uint
	Description string
}

type UpdateTicketDescriptionUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketDescriptionUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketDescriptionUseCase {
	return &UpdateTicketDescriptionUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketDescriptionUseCase) Execute(ctx context.Context, cmd UpdateTicketDescriptionCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_description", func(_ context.Context, t *ticket.Ticket) error {
		return t.ChangeDescription(cmd.Description)
	})
}
