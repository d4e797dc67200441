package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type DeleteRelationsCommand struct {
	TicketID         uint
	RelatedTicketIDs []uint
}

type DeleteRelationsResult struct {
	Deleted int64
}

type DeleteRelationsUseCase struct {
	ticketRepo   ticket.Repository
	relationRepo ticket.RelationRepository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewDeleteRelationsUseCase(
	ticketRepo ticket.Repository,
	relationRepo ticket.RelationRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteRelationsUseCase {
	return &DeleteRelationsUseCase{
		ticketRepo:   ticketRepo,
		relationRepo: relationRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

// Execute removes every edge between the ticket and each related id, in both
// directions and of any type. Ids with no edges are skipped silently.
func (uc *DeleteRelationsUseCase) Execute(ctx context.Context, cmd DeleteRelationsCommand) (*DeleteRelationsResult, error) {
	uc.logger.Infow("executing delete relations use case",
		"ticket_id", cmd.TicketID,
		"related_ticket_ids", cmd.RelatedTicketIDs,
	)

	var deleted int64
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := lockTicket(txCtx, uc.ticketRepo, cmd.TicketID); err != nil {
			return err
		}

		for _, relatedID := range cmd.RelatedTicketIDs {
			n, err := uc.relationRepo.DeleteBetween(txCtx, cmd.TicketID, relatedID)
			if err != nil {
				return err
			}
			deleted += n
		}
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to delete relations", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("relations deleted", "ticket_id", cmd.TicketID, "deleted", deleted)
	return &DeleteRelationsResult{Deleted: deleted}, nil
}
