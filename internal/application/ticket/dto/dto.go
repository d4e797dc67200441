package dto

import (
	"time"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint                `json:"id"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	DescriptionHTML string              `json:"description_html"`
	Author          string              `json:"author"`
	Assignee        string              `json:"assignee"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	IsDeleted       bool                `json:"is_deleted"`
	DeletedAt       *time.Time          `json:"deleted_at,omitempty"`
	ParentID        *uint               `json:"parent_id"`
	Parent          *TicketSummaryDTO   `json:"parent"`
	RelatedTickets  []TicketRelationDTO `json:"related_tickets"`
}

// TicketSummaryDTO is the one-level view of a linked ticket.
type TicketSummaryDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	Author    string `json:"author"`
	Assignee  string `json:"assignee"`
	IsDeleted bool   `json:"is_deleted"`
}

type TicketRelationDTO struct {
	TicketID     uint              `json:"ticket_id"`
	RelationType string            `json:"relation_type"`
	Ticket       *TicketSummaryDTO `json:"ticket,omitempty"`
}

type TicketListItemDTO struct {
	ID          uint      `json:"id"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Assignee    string    `json:"assignee"`
	ParentID    *uint     `json:"parent_id"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToTicketDTO maps a detail projection. Only outgoing edges are exposed as
// related tickets.
func ToTicketDTO(t *ticket.Ticket, descriptionHTML string) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:              t.ID(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: descriptionHTML,
		Author:          t.Author(),
		Assignee:        t.Assignee(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		IsDeleted:       t.IsDeleted(),
		DeletedAt:       t.DeletedAt(),
		ParentID:        t.ParentID(),
		Parent:          ToTicketSummaryDTO(t.Parent()),
		RelatedTickets:  mapper.MapSlice(t.RelatedTickets(), ToTicketRelationDTO),
	}
}

func ToTicketSummaryDTO(t *ticket.Ticket) *TicketSummaryDTO {
	if t == nil {
		return nil
	}
	return &TicketSummaryDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		Author:    t.Author(),
		Assignee:  t.Assignee(),
		IsDeleted: t.IsDeleted(),
	}
}

func ToTicketRelationDTO(r *ticket.Relation) TicketRelationDTO {
	return TicketRelationDTO{
		TicketID:     r.ToTicketID(),
		RelationType: r.Type().String(),
		Ticket:       ToTicketSummaryDTO(r.ToTicket()),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:          t.ID(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Author:      t.Author(),
		Assignee:    t.Assignee(),
		ParentID:    t.ParentID(),
		IsDeleted:   t.IsDeleted(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	return mapper.MapSlice(tickets, ToTicketListItemDTO)
}
