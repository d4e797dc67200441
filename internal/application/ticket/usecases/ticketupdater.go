package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// ticketUpdater applies one mutation to a ticket while holding its row lock:
// lock, mutate, persist, commit. Any failure rolls the whole thing back.
type ticketUpdater struct {
	ticketRepo ticket.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func newTicketUpdater(ticketRepo ticket.Repository, txMgr db.Transactor, logger logger.Interface) ticketUpdater {
	return ticketUpdater{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (u ticketUpdater) update(
	ctx context.Context,
	ticketID uint,
	action string,
	mutate func(txCtx context.Context, t *ticket.Ticket) error,
) error {
	err := u.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := lockTicket(txCtx, u.ticketRepo, ticketID)
		if err != nil {
			return err
		}

		if err := mutate(txCtx, t); err != nil {
			return asValidationError(err)
		}

		return u.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		u.logger.Warnw("ticket update failed", "action", action, "ticket_id", ticketID, "error", err)
		return err
	}

	u.logger.Infow("ticket updated", "action", action, "ticket_id", ticketID)
	return nil
}

// lockTicket loads the ticket with a write lock held until the transaction ends.
func lockTicket(ctx context.Context, repo ticket.Repository, id uint) (*ticket.Ticket, error) {
	t, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ticket.NewTicketNotFoundError(id)
	}
	return t, nil
}

// requireTicket fails with NotFound(id) unless the ticket exists. Soft-deleted
// tickets count as existing.
func requireTicket(ctx context.Context, repo ticket.Repository, id uint) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ticket.NewTicketNotFoundError(id)
	}
	return nil
}

// asValidationError keeps typed errors and turns plain domain rejections into
// validation errors.
func asValidationError(err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewValidationError(err.Error())
}
