package contract

import (
	"context"

	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/repository/specification"
)

type AnimeRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Anime, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Anime, error)
	// FindFamilyIds resolves the related-title family of an anime: every id
	// whose title (english preferred) starts with the same base title, where
	// the base is truncated at the first ':' or at ' Season'. An unknown id
	// resolves to just itself.
	FindFamilyIds(ctx context.Context, animeId int) ([]int, error)
}
