package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/mappers"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/models"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type TicketRelationRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRelationRepository(db *gorm.DB, logger logger.Interface) *TicketRelationRepository {
	return &TicketRelationRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRelationRepository) Exists(ctx context.Context, key ticket.RelationKey) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TicketRelationModel{}).
		Where("from_ticket_id = ? AND to_ticket_id = ? AND relation_type = ?",
			key.FromTicketID, key.ToTicketID, key.Type.Ordinal()).
		Count(&count).Error
	if err != nil {
		return false, dbError("check relation existence", err)
	}
	return count > 0, nil
}

// Create inserts the edge. A concurrent insert of the same triple surfaces as
// a relation conflict through the composite primary key.
func (r *TicketRelationRepository) Create(ctx context.Context, rel *ticket.Relation) error {
	model := r.mapper.RelationToModel(rel)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return ticket.NewRelationExistsError(rel.FromTicketID(), rel.ToTicketID())
		}
		r.logger.Errorw("failed to create ticket relation", "relation", rel.Key().String(), "error", err)
		return dbError("create ticket relation", err)
	}

	return nil
}

func (r *TicketRelationRepository) DeleteBetween(ctx context.Context, ticketID, otherID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("(from_ticket_id = ? AND to_ticket_id = ?) OR (from_ticket_id = ? AND to_ticket_id = ?)",
			ticketID, otherID, otherID, ticketID).
		Delete(&models.TicketRelationModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket relations",
			"ticket_id", ticketID, "other_id", otherID, "error", result.Error)
		return 0, dbError("delete ticket relations", result.Error)
	}

	return result.RowsAffected, nil
}
