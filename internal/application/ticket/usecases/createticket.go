package usecases

import (
	"context"
	"time"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type CreateTicketCommand struct {
	Priority    string
	Title       string
	Description string
	Author      string
	Assignee    string
	ParentID    *uint
}

type CreateTicketResult struct {
	TicketID  uint
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute resolves the parent before validating the rest of the command, so a
// missing parent is reported as NotFound even when other fields are invalid.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "author", cmd.Author)

	var created *ticket.Ticket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.ParentID != nil {
			if err := requireTicket(txCtx, uc.ticketRepo, *cmd.ParentID); err != nil {
				return err
			}
		}

		priority, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		t, err := ticket.NewTicket(priority, cmd.Title, cmd.Description, cmd.Author, cmd.Assignee, cmd.ParentID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Create(txCtx, t); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to create ticket", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", created.ID())

	return &CreateTicketResult{
		TicketID:  created.ID(),
		CreatedAt: created.CreatedAt(),
	}, nil
}
