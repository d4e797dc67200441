package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetActiveByUsername returns (nil, nil) when no active user has the name.
	GetActiveByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Count(ctx context.Context) (int64, error)
}
