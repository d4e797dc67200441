package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/tracklet-io/tracklet/internal/domain/user"
	"github.com/tracklet-io/tracklet/internal/shared/errors"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

// invalidCredentialsMessage is shared by every login failure so callers cannot
// tell an unknown user from a wrong password.
const invalidCredentialsMessage = "invalid username or password"

// dummyPassword is hashed once per use case; unknown and inactive users are
// checked against that hash so every rejection costs one bcrypt compare.
const dummyPassword = "tracklet-login-dummy-password"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, username string) (string, time.Time, error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface

	dummyOnce sync.Once
	dummyHash string
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetActiveByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if u == nil || !u.CanAuthenticate() {
		uc.burnCompare(cmd.Password)
		uc.logger.Warnw("login rejected", "username", cmd.Username, "reason", "unknown or inactive user")
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("login rejected", "username", cmd.Username, "reason", "password mismatch")
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "username", u.Username())

	return &LoginResult{
		User:      u,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *LoginUseCase) burnCompare(password string) {
	uc.dummyOnce.Do(func() {
		hash, err := uc.hasher.Hash(dummyPassword)
		if err != nil {
			uc.logger.Errorw("failed to hash dummy password", "error", err)
			return
		}
		uc.dummyHash = hash
	})
	if uc.dummyHash != "" {
		_ = uc.hasher.Verify(password, uc.dummyHash)
	}
}
