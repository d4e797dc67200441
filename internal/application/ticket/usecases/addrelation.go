package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type AddRelationCommand struct {
	FromTicketID uint
	ToTicketID   uint
	RelationType string
}

type AddRelationsCommand struct {
	FromTicketID uint
	ToTicketIDs  []uint
	RelationType string
}

type AddRelationsResult struct {
	Added int
}

// relationLinker creates edges out of one source ticket. The checks run in a
// fixed order: source exists, target exists, not self, not duplicate.
type relationLinker struct {
	ticketRepo   ticket.Repository
	relationRepo ticket.RelationRepository
	txMgr        db.Transactor
	logger       logger.Interface
}

func (l relationLinker) link(ctx context.Context, fromID uint, toIDs []uint, relationType string) error {
	rt, err := vo.NewRelationType(relationType)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	return l.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := lockTicket(txCtx, l.ticketRepo, fromID); err != nil {
			return err
		}

		for _, toID := range toIDs {
			if err := l.linkOne(txCtx, fromID, toID, rt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (l relationLinker) linkOne(ctx context.Context, fromID, toID uint, rt vo.RelationType) error {
	if err := requireTicket(ctx, l.ticketRepo, toID); err != nil {
		return err
	}

	rel, err := ticket.NewRelation(fromID, toID, rt)
	if err != nil {
		return asValidationError(err)
	}

	exists, err := l.relationRepo.Exists(ctx, rel.Key())
	if err != nil {
		return err
	}
	if exists {
		return ticket.NewRelationExistsError(fromID, toID)
	}

	if err := l.relationRepo.Create(ctx, rel); err != nil {
		return err
	}

	l.logger.Infow("relation created", "relation", rel.Key().String())
	return nil
}

type AddRelationUseCase struct {
	linker relationLinker
	logger logger.Interface
}

func NewAddRelationUseCase(
	ticketRepo ticket.Repository,
	relationRepo ticket.RelationRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddRelationUseCase {
	return &AddRelationUseCase{
		linker: relationLinker{
			ticketRepo:   ticketRepo,
			relationRepo: relationRepo,
			txMgr:        txMgr,
			logger:       logger,
		},
		logger: logger,
	}
}

func (uc *AddRelationUseCase) Execute(ctx context.Context, cmd AddRelationCommand) error {
	err := uc.linker.link(ctx, cmd.FromTicketID, []uint{cmd.ToTicketID}, cmd.RelationType)
	if err != nil {
		uc.logger.Warnw("failed to add relation",
			"from_ticket_id", cmd.FromTicketID,
			"to_ticket_id", cmd.ToTicketID,
			"relation_type", cmd.RelationType,
			"error", err,
		)
		return err
	}
	return nil
}

// AddRelationsUseCase links one ticket to several targets with the same
// relation type. The batch is atomic: the first failure rolls back every edge.
type AddRelationsUseCase struct {
	linker relationLinker
	logger logger.Interface
}

func NewAddRelationsUseCase(
	ticketRepo ticket.Repository,
	relationRepo ticket.RelationRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddRelationsUseCase {
	return &AddRelationsUseCase{
		linker: relationLinker{
			ticketRepo:   ticketRepo,
			relationRepo: relationRepo,
			txMgr:        txMgr,
			logger:       logger,
		},
		logger: logger,
	}
}

func (uc *AddRelationsUseCase) Execute(ctx context.Context, cmd AddRelationsCommand) (*AddRelationsResult, error) {
	uc.logger.Infow("executing add relations use case",
		"from_ticket_id", cmd.FromTicketID,
		"targets", len(cmd.ToTicketIDs),
		"relation_type", cmd.RelationType,
	)

	if len(cmd.ToTicketIDs) == 0 {
		return nil, errors.NewValidationError("at least one related ticket id is required")
	}

	if err := uc.linker.link(ctx, cmd.FromTicketID, cmd.ToTicketIDs, cmd.RelationType); err != nil {
		uc.logger.Warnw("failed to add relations", "from_ticket_id", cmd.FromTicketID, "error", err)
		return nil, err
	}

	return &AddRelationsResult{Added: len(cmd.ToTicketIDs)}, nil
}
