package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// UpdateTicketCommand changes several fields at once. String fields are only
// applied when non-nil, but a nil ParentID clears the parent.
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Author      *string
	Assignee    *string
	ParentID    *uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	updater    ticketUpdater
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		updater:    newTicketUpdater(ticketRepo, txMgr, logger),
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	return uc.updater.update(ctx, cmd.TicketID, "update", func(txCtx context.Context, t *ticket.Ticket) error {
		if cmd.Title != nil {
			if err := t.ChangeTitle(*cmd.Title); err != nil {
				return err
			}
		}
		if cmd.Description != nil {
			if err := t.ChangeDescription(*cmd.Description); err != nil {
				return err
			}
		}
		if cmd.Author != nil {
			if err := t.ChangeAuthor(*cmd.Author); err != nil {
				return err
			}
		}
		if cmd.Assignee != nil {
			if err := t.ChangeAssignee(*cmd.Assignee); err != nil {
				return err
			}
		}

		if cmd.ParentID != nil {
			if err := requireTicket(txCtx, uc.ticketRepo, *cmd.ParentID); err != nil {
				return err
			}
		}
		return t.ChangeParentID(cmd.ParentID)
	})
}
