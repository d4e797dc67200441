package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketPriorityCommand struct {
	TicketID uint
	Priority string
}

type UpdateTicketPriorityUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketPriorityUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketPriorityUseCase {
	return &UpdateTicketPriorityUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketPriorityUseCase) Execute(ctx context.Context, cmd UpdateTicketPriorityCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_priority", func(_ context.Context, t *ticket.Ticket) error {
		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return err
		}
		return t.ChangePriority(priority)
	})
}
