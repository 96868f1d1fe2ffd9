package contract

import (
	"context"

	"anime-reel-be/internal/entity"
)

type TasteProfileRepository interface {
	// FindByUserId returns nil (no error) when the user has no profile yet.
	FindByUserId(ctx context.Context, userId int) (*entity.TasteProfile, error)
	// Upsert performs a single insert-or-update by user key; profile writes
	// rely on the store's row-level atomicity, no extra locking.
	Upsert(ctx context.Context, profile *entity.TasteProfile) error
	DeleteByUserId(ctx context.Context, userId int) error
}
