package ticket

import (
	"github.com/tracklet-io/tracklet/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Priority    string `json:"priority" validate:"required,oneof=Low Medium High"`
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Author      string `json:"author" validate:"required,notblank,max=100"`
	Assignee    string `json:"assignee" validate:"max=100"`
	Parent      *uint  `json:"parent" validate:"omitempty,gt=0"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Priority:    r.Priority,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		Assignee:    r.Assignee,
		ParentID:    r.Parent,
	}
}

type CreateTicketResponse struct {
	ID uint `json:"id"`
}

// UpdateTicketRequest applies only the string fields that are present.
// A missing or null parent clears the parent.
type UpdateTicketRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Author      *string `json:"author" validate:"omitempty,notblank,max=100"`
	Assignee    *string `json:"assignee" validate:"omitempty,notblank,max=100"`
	Parent      *uint   `json:"parent" validate:"omitempty,gt=0"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Author:      r.Author,
		Assignee:    r.Assignee,
		ParentID:    r.Parent,
	}
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New InProgress Done"`
}

type UpdateTicketPriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=Low Medium High"`
}

type UpdateTicketAssigneeRequest struct {
	Assignee string `json:"assignee" validate:"required,notblank,max=100"`
}

type UpdateTicketAuthorRequest struct {
	Author string `json:"author" validate:"required,notblank,max=100"`
}

type UpdateTicketTitleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=200"`
}

type UpdateTicketDescriptionRequest struct {
	Description string `json:"description" validate:"max=2000"`
}

type UpdateTicketParentRequest struct {
	Parent *uint `json:"parent" validate:"omitempty,gt=0"`
}

type AddRelationsRequest struct {
	RelatesTo    []uint `json:"relates_to" validate:"required,min=1,max=50,dive,gt=0"`
	RelationType string `json:"relation_type" validate:"required,oneof=RelatedTo Blocks BlockedBy Depends Duplicates DuplicatedBy Follows Precedes"`
}

type DeleteRelationsRequest struct {
	RelatesTo []uint `json:"relates_to" validate:"required,min=1,max=50,dive,gt=0"`
}

// ListTicketsRequest is the body of POST /ticket/filter. An empty sort_by
// sorts by creation time, an empty sort_order sorts ascending.
type ListTicketsRequest struct {
	SortBy     string   `json:"sort_by" validate:"omitempty,oneof=CreatedAt Priority Status"`
	SortOrder  string   `json:"sort_order" validate:"omitempty,oneof=Asc Desc"`
	Page       int      `json:"page" validate:"gte=1"`
	PageSize   int      `json:"page_size" validate:"gte=1,lte=100"`
	Search     string   `json:"search" validate:"max=200"`
	Statuses   []string `json:"statuses" validate:"omitempty,dive,oneof=New InProgress Done"`
	Priorities []string `json:"priorities" validate:"omitempty,dive,oneof=Low Medium High"`
	Authors    []string `json:"authors" validate:"omitempty,dive,notblank"`
	Assignees  []string `json:"assignees" validate:"omitempty,dive,notblank"`
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	sortBy := r.SortBy
	if sortBy == "" {
		sortBy = "CreatedAt"
	}
	return usecases.ListTicketsQuery{
		Statuses:   r.Statuses,
		Priorities: r.Priorities,
		Authors:    r.Authors,
		Assignees:  r.Assignees,
		Search:     r.Search,
		SortBy:     sortBy,
		SortOrder:  r.SortOrder,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}
