package http

import (
	"gorm.io/gorm"

	"github.com/tracklet-io/tracklet/internal/domain/ticket"
	"github.com/tracklet-io/tracklet/internal/domain/user"
	"github.com/tracklet-io/tracklet/internal/infrastructure/repository"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	ticketRepo   ticket.Repository
	relationRepo ticket.RelationRepository
	userRepo     user.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		ticketRepo:   repository.NewTicketRepository(db, log),
		relationRepo: repository.NewTicketRelationRepository(db, log),
		userRepo:     repository.NewUserRepository(db, log),
	}
}
