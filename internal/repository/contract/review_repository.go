package contract

import (
	"context"

	"anime-reel-be/internal/entity"
)

type ReviewRepository interface {
	FindByAnimeIds(ctx context.Context, animeIds []int) ([]*entity.Review, error)
}
