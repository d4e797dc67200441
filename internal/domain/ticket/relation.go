package ticket

import (
	"fmt"

	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
)

// RelationKey identifies an edge. The same pair of tickets may carry several
// edges as long as their types differ.
type RelationKey struct {
	FromTicketID uint
	ToTicketID   uint
	Type         vo.RelationType
}

func (k RelationKey) String() string {
	return fmt.Sprintf("%d-[%s]->%d", k.FromTicketID, k.Type, k.ToTicketID)
}

// Relation is a directed, typed edge between two tickets.
type Relation struct {
	key RelationKey

	// counterpart tickets, populated only by detail queries
	from *Ticket
	to   *Ticket
}

// NewRelation validates a new edge. A ticket may not relate to itself.
func NewRelation(fromID, toID uint, relationType vo.RelationType) (*Relation, error) {
	if fromID == 0 || toID == 0 {
		return nil, fmt.Errorf("relation ticket IDs cannot be zero")
	}
	if fromID == toID {
		return nil, NewSelfRelationError(fromID)
	}
	if !relationType.IsValid() {
		return nil, fmt.Errorf("invalid relation type: %s", relationType)
	}
	return &Relation{key: RelationKey{FromTicketID: fromID, ToTicketID: toID, Type: relationType}}, nil
}

// ReconstructRelation rebuilds an edge from persistence, with optional
// counterpart tickets.
func ReconstructRelation(fromID, toID uint, relationType vo.RelationType, from, to *Ticket) *Relation {
	return &Relation{
		key:  RelationKey{FromTicketID: fromID, ToTicketID: toID, Type: relationType},
		from: from,
		to:   to,
	}
}

func (r *Relation) Key() RelationKey {
	return r.key
}

func (r *Relation) FromTicketID() uint {
	return r.key.FromTicketID
}

func (r *Relation) ToTicketID() uint {
	return r.key.ToTicketID
}

func (r *Relation) Type() vo.RelationType {
	return r.key.Type
}

func (r *Relation) FromTicket() *Ticket {
	return r.from
}

func (r *Relation) ToTicket() *Ticket {
	return r.to
}

// Touches reports whether the edge connects a and b in either direction.
func (r *Relation) Touches(a, b uint) bool {
	return (r.key.FromTicketID == a && r.key.ToTicketID == b) ||
		(r.key.FromTicketID == b && r.key.ToTicketID == a)
}
