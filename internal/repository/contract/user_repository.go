package contract

import (
	"context"

	"anime-reel-be/internal/entity"
)

type UserRepository interface {
	// FindByUsername returns nil (no error) when the username is unknown.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	DeleteById(ctx context.Context, userId int) error
}
