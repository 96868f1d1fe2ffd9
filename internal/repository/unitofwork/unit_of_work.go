package unitofwork

import (
	"context"

	"anime-reel-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TasteProfileRepository() contract.TasteProfileRepository
	AnimeRepository() contract.AnimeRepository
	ReviewRepository() contract.ReviewRepository
}
