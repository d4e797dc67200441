package mappers

import (
	"fmt"
	"time"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/models"
	"github.com/tracklet-io/tracklet/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket to its row. Associations are not copied.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a row, ignoring any preloaded associations.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ToDomainDetail also converts a preloaded parent and relation edges.
	ToDomainDetail(model *models.TicketModel) (*ticket.Ticket, error)

	ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error)

	RelationToModel(r *ticket.Relation) *models.TicketRelationModel
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		Status:      t.Status().Ordinal(),
		Priority:    t.Priority().Ordinal(),
		Title:       t.Title(),
		Description: t.Description(),
		Author:      t.Author(),
		Assignee:    t.Assignee(),
		IsDeleted:   t.IsDeleted(),
		ParentID:    t.ParentID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	if deletedAt := t.DeletedAt(); deletedAt != nil {
		d := *deletedAt
		model.DeletedAt = &d
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.TicketStatusFromOrdinal(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.PriorityFromOrdinal(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	var deletedAt *time.Time
	if model.DeletedAt != nil {
		d := model.DeletedAt.UTC()
		deletedAt = &d
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		status,
		priority,
		model.Title,
		model.Description,
		model.Author,
		model.Assignee,
		model.IsDeleted,
		deletedAt,
		model.ParentID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}

	return t, nil
}

func (m *TicketMapperImpl) ToDomainDetail(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := m.ToDomain(model)
	if err != nil || t == nil {
		return t, err
	}

	if model.Parent != nil {
		parent, err := m.ToDomain(model.Parent)
		if err != nil {
			return nil, err
		}
		if err := t.AttachParent(parent); err != nil {
			return nil, err
		}
	}

	relations := make([]*ticket.Relation, 0, len(model.Outgoing)+len(model.Incoming))
	for i := range model.Outgoing {
		r, err := m.relationToDomain(&model.Outgoing[i], t, nil)
		if err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	for i := range model.Incoming {
		r, err := m.relationToDomain(&model.Incoming[i], nil, t)
		if err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	t.AttachRelations(relations)

	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapRows(ms, m.ToDomain, func(model *models.TicketModel) uint {
		return model.ID
	})
}

func (m *TicketMapperImpl) RelationToModel(r *ticket.Relation) *models.TicketRelationModel {
	return &models.TicketRelationModel{
		FromTicketID: r.FromTicketID(),
		ToTicketID:   r.ToTicketID(),
		RelationType: r.Type().Ordinal(),
	}
}

// relationToDomain fills whichever end is not already known from the
// preloaded counterpart.
func (m *TicketMapperImpl) relationToDomain(model *models.TicketRelationModel, from, to *ticket.Ticket) (*ticket.Relation, error) {
	relationType, err := vo.RelationTypeFromOrdinal(model.RelationType)
	if err != nil {
		return nil, fmt.Errorf("relation %d->%d: %w", model.FromTicketID, model.ToTicketID, err)
	}

	if from == nil && model.FromTicket != nil {
		if from, err = m.ToDomain(model.FromTicket); err != nil {
			return nil, err
		}
	}
	if to == nil && model.ToTicket != nil {
		if to, err = m.ToDomain(model.ToTicket); err != nil {
			return nil, err
		}
	}

	return ticket.ReconstructRelation(model.FromTicketID, model.ToTicketID, relationType, from, to), nil
}
