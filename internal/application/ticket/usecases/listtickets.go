package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/application/ticket/dto"
	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	vo "github.com/tracklet-io/tracklet/internal/domain/ticket/valueobjects"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/mapper"
	"github.com/tracklet-io/tracklet/internal/shared/query"
)

type ListTicketsQuery struct {
	Statuses   []string
	Priorities []string
	Authors    []string
	Assignees  []string
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// ListTicketsResult reports Total before paging. PageSize is the number of
// items actually returned.
type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case",
		"page", q.Page,
		"page_size", q.PageSize,
		"sort_by", q.SortBy,
	)

	statuses, err := mapper.MapSliceWithError(q.Statuses, vo.NewTicketStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priorities, err := mapper.MapSliceWithError(q.Priorities, vo.NewPriority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	filter := ticket.ListFilter{
		BaseFilter: query.NewBaseFilter(
			query.WithPage(q.Page, q.PageSize),
			query.WithSort(q.SortBy, query.ParseSortOrder(q.SortOrder)),
		),
		Statuses:   statuses,
		Priorities: priorities,
		Authors:    q.Authors,
		Assignees:  q.Assignees,
		Search:     q.Search,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := dto.ToTicketListItemDTOs(tickets)
	if items == nil {
		items = []dto.TicketListItemDTO{}
	}

	uc.logger.Infow("tickets listed successfully", "count", len(items), "total", total)

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.NormalizedPage(),
		PageSize: len(items),
	}, nil
}
