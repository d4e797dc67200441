package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/biztime"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxAuthorLength      = 100
	MaxAssigneeLength    = 100
)

// Ticket is the aggregate root. Every mutator refreshes updatedAt and leaves
// the ticket untouched when it rejects its input.
type Ticket struct {
	id          uint
	status      vo.TicketStatus
	priority    vo.Priority
	title       string
	description string
	author      string
	assignee    string
	createdAt   time.Time
	updatedAt   time.Time
	isDeleted   bool
	deletedAt   *time.Time
	parentID    *uint

	// read projections, populated only by detail queries
	parent   *Ticket
	outgoing []*Relation
	incoming []*Relation
}

// NewTicket creates a ticket in status New with createdAt == updatedAt.
func NewTicket(
	priority vo.Priority,
	title string,
	description string,
	author string,
	assignee string,
	parentID *uint,
) (*Ticket, error) {
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}
	if err := validateAssignee(assignee); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		status:      vo.StatusNew,
		priority:    priority,
		title:       title,
		description: description,
		author:      author,
		assignee:    assignee,
		createdAt:   now,
		updatedAt:   now,
		parentID:    copyID(parentID),
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	status vo.TicketStatus,
	priority vo.Priority,
	title string,
	description string,
	author string,
	assignee string,
	isDeleted bool,
	deletedAt *time.Time,
	parentID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:          id,
		status:      status,
		priority:    priority,
		title:       title,
		description: description,
		author:      author,
		assignee:    assignee,
		isDeleted:   isDeleted,
		deletedAt:   deletedAt,
		parentID:    copyID(parentID),
		createdAt:   createdAt.UTC(),
		updatedAt:   updatedAt.UTC(),
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Author() string {
	return t.author
}

func (t *Ticket) Assignee() string {
	return t.assignee
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) IsDeleted() bool {
	return t.isDeleted
}

func (t *Ticket) DeletedAt() *time.Time {
	return t.deletedAt
}

func (t *Ticket) ParentID() *uint {
	return copyID(t.parentID)
}

// Parent is only populated by detail queries, one level deep.
func (t *Ticket) Parent() *Ticket {
	return t.parent
}

// RelatedTickets returns the outgoing edges (this ticket is the source).
func (t *Ticket) RelatedTickets() []*Relation {
	out := make([]*Relation, len(t.outgoing))
	copy(out, t.outgoing)
	return out
}

// IncomingRelations returns edges pointing at this ticket.
func (t *Ticket) IncomingRelations() []*Relation {
	out := make([]*Relation, len(t.incoming))
	copy(out, t.incoming)
	return out
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachParent sets the resolved parent for read projections. The parent must
// match parentID.
func (t *Ticket) AttachParent(parent *Ticket) error {
	if parent == nil {
		t.parent = nil
		return nil
	}
	if t.parentID == nil || *t.parentID != parent.ID() {
		return fmt.Errorf("parent %d does not match parent id of ticket %d", parent.ID(), t.id)
	}
	t.parent = parent
	return nil
}

// AttachRelations sets the loaded relation edges, split by direction.
func (t *Ticket) AttachRelations(relations []*Relation) {
	t.outgoing = t.outgoing[:0]
	t.incoming = t.incoming[:0]
	for _, r := range relations {
		switch {
		case r.FromTicketID() == t.id:
			t.outgoing = append(t.outgoing, r)
		case r.ToTicketID() == t.id:
			t.incoming = append(t.incoming, r)
		}
	}
}

func (t *Ticket) ChangeTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) ChangeDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangeAuthor(author string) error {
	if err := validateAuthor(author); err != nil {
		return err
	}
	t.author = author
	t.touch()
	return nil
}

func (t *Ticket) ChangeAssignee(assignee string) error {
	if err := validateAssignee(assignee); err != nil {
		return err
	}
	t.assignee = assignee
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.touch()
	return nil
}

// ChangeStatus sets any valid status; there is no transition graph.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.touch()
	return nil
}

// ChangeParentID sets or, with nil, clears the parent link. Existence of the
// parent is checked by the caller.
func (t *Ticket) ChangeParentID(parentID *uint) error {
	if parentID != nil && t.id != 0 && *parentID == t.id {
		return fmt.Errorf("ticket %d cannot be its own parent", t.id)
	}
	t.parentID = copyID(parentID)
	if t.parent != nil && (t.parentID == nil || *t.parentID != t.parent.ID()) {
		t.parent = nil
	}
	t.touch()
	return nil
}

// Delete soft-deletes the ticket. Repeated calls keep the first deletedAt.
func (t *Ticket) Delete() {
	now := t.touch()
	t.isDeleted = true
	if t.deletedAt == nil {
		t.deletedAt = &now
	}
}

func (t *Ticket) touch() time.Time {
	now := biztime.NowUTC()
	t.updatedAt = now
	return now
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

func validateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("author is required")
	}
	if utf8.RuneCountInString(author) > MaxAuthorLength {
		return fmt.Errorf("author exceeds maximum length of %d characters", MaxAuthorLength)
	}
	return nil
}

func validateAssignee(assignee string) error {
	if utf8.RuneCountInString(assignee) > MaxAssigneeLength {
		return fmt.Errorf("assignee exceeds maximum length of %d characters", MaxAssigneeLength)
	}
	return nil
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
