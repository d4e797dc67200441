package usecases

import (
	"context"

	"github.com/tracklet-io/tracklet/internal/application/user/dto"
	"github.com/tracklet-io/tracklet/internal/domain/user"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error)
}

// GetCurrentUserUseCase resolves the account behind a verified token. A token
// for a user deactivated since it was issued is rejected.
type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if u == nil || !u.IsActive() {
		return nil, errors.NewUnauthorizedError("user is not active")
	}
	return dto.ToUserDTO(u), nil
}
