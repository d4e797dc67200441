package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/mappers"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/models"
	"github.com/tracklet-io/tracklet/internal/shared/db"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/mapper"
)

// ticketSortColumns whitelists ORDER BY columns by public sort key.
var ticketSortColumns = map[string]string{
	ticket.SortByCreatedAt: "created_at",
	ticket.SortByPriority:  "priority",
	ticket.SortByStatus:    "status",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket in database", "error", err)
		return dbError("create ticket", err)
	}

	return t.SetID(model.ID)
}

// Update writes every column, zero values included, so clearing a field
// (assignee, parent) and moving back to status New persist.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(model).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket in database", "ticket_id", model.ID, "error", result.Error)
		return dbError("update ticket", result.Error)
	}

	// Note: RowsAffected may be 0 on MySQL when values are unchanged; callers
	// have already locked the row.
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(ctx, id, db.GetTxFromContext(ctx, r.db))
}

func (r *TicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.first(ctx, id, db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()))
}

func (r *TicketRepository) first(ctx context.Context, id uint, tx *gorm.DB) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, dbError("get ticket", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetDetail(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Preload("Parent").
		Preload("Outgoing", func(q *gorm.DB) *gorm.DB {
			return q.Order("to_ticket_id ASC, relation_type ASC")
		}).
		Preload("Outgoing.ToTicket").
		Preload("Incoming", func(q *gorm.DB) *gorm.DB {
			return q.Order("from_ticket_id ASC, relation_type ASC")
		}).
		Preload("Incoming.FromTicket").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, dbError("get ticket detail", err)
	}

	return r.mapper.ToDomainDetail(&model)
}

func (r *TicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, dbError("check ticket existence", err)
	}
	return count > 0, nil
}

// List applies filters, counts the matches, then sorts and pages. Soft-deleted
// tickets are included.
func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Scopes(
		db.WhereIn("status", mapper.MapSlice(filter.Statuses, vo.TicketStatus.Ordinal)),
		db.WhereIn("priority", mapper.MapSlice(filter.Priorities, vo.Priority.Ordinal)),
		db.WhereIn("author", filter.Authors),
		db.WhereIn("assignee", filter.Assignees),
	)

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		query = query.Where(searchCondition(tx.Dialector.Name()), pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, dbError("count tickets", err)
	}

	if order := filter.OrderClause(ticketSortColumns); order != "" {
		query = query.Order(order).Order("id ASC")
	}

	var ticketModels []models.TicketModel
	if err := query.Scopes(db.Paginate(filter.PageFilter)).Find(&ticketModels).Error; err != nil {
		return nil, 0, dbError("list tickets", err)
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// searchCondition is a case-sensitive substring match over title or
// description with backslash as the LIKE escape character.
func searchCondition(dialect string) string {
	switch dialect {
	case "mysql":
		return "(title COLLATE utf8mb4_bin LIKE ? OR description COLLATE utf8mb4_bin LIKE ?)"
	case "postgres":
		return "(title LIKE ? OR description LIKE ?)"
	default:
		return `(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`
	}
}

// dbError wraps a storage failure, reporting cancellation as its own kind.
func dbError(action string, err error) error {
	return errors.FromContext(fmt.Errorf("failed to %s: %w", action, err))
}
