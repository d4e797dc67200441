package ticket

import (
	"context"

	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/query"
)

// Lookup methods return (nil, nil) when the ticket does not exist.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDForUpdate takes a row write lock held until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	// GetDetail loads the parent (one level) and relation edges in both
	// directions with their counterpart tickets.
	GetDetail(ctx context.Context, id uint) (*Ticket, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
}

type RelationRepository interface {
	Exists(ctx context.Context, key RelationKey) (bool, error)
	Create(ctx context.Context, r *Relation) error
	// DeleteBetween removes every edge between the two tickets, in both
	// directions and of any type, and returns how many were removed.
	DeleteBetween(ctx context.Context, ticketID, otherID uint) (int64, error)
}

// Sort keys accepted by ListFilter.SortBy.
const (
	SortByCreatedAt = "CreatedAt"
	SortByPriority  = "Priority"
	SortByStatus    = "Status"
)

// ListFilter combines its criteria with AND. Empty sets and an empty search
// do not filter.
type ListFilter struct {
	query.BaseFilter
	Statuses   []vo.TicketStatus
	Priorities []vo.Priority
	Authors    []string
	Assignees  []string
	// Search is a case-sensitive substring matched against title or description.
	Search string
}
