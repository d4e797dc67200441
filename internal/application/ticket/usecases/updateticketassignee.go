package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type UpdateTicketAssigneeCommand struct {
	TicketID uint
	Assignee string
}

type UpdateTicketAssigneeUseCase struct {
	updater ticketUpdater
}

func NewUpdateTicketAssigneeUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketAssigneeUseCase {
	return &UpdateTicketAssigneeUseCase{
		updater: newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketAssigneeUseCase) Execute(ctx context.Context, cmd UpdateTicketAssigneeCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "change_assignee", func(_ context.Context, t *ticket.Ticket) error {
		return t.ChangeAssignee(cmd.Assignee)
	})
}
