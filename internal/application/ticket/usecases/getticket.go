package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/application/ticket/dto"
	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
	"github.com/tracklet-io/tracklet/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetDetail(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, ticket.NewTicketNotFoundError(query.TicketID)
	}

	html, err := uc.renderer.Render(t.Description())
	if err != nil {
		// the raw description is still returned
		uc.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		html = ""
	}

	return dto.ToTicketDTO(t, html), nil
}
