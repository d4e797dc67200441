package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type UpdateTicketTitleExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketTitleCommand) error
}

type UpdateTicketDescriptionExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketDescriptionCommand) error
}

type UpdateTicketAuthorExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketAuthorCommand) error
}

type UpdateTicketAssigneeExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketAssigneeCommand) error
}

type UpdateTicketPriorityExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketPriorityCommand) error
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) error
}

type UpdateTicketParentExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketParentCommand) error
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddRelationExecutor interface {
	Execute(ctx context.Context, cmd AddRelationCommand) error
}

type AddRelationsExecutor interface {
	Execute(ctx context.Context, cmd AddRelationsCommand) (*AddRelationsResult, error)
}

type DeleteRelationsExecutor interface {
	Execute(ctx context.Context, cmd DeleteRelationsCommand) (*DeleteRelationsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
