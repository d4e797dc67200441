package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type UpdateTicketStatusUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_status", func(_ context.Context, t *ticket.Ticket) error {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return err
		}
		return t.ChangeStatus(status)
	})
}
