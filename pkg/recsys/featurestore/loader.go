package featurestore

import (
	"context"
	"fmt"

	"anime-reel-be/internal/mapper"
	"anime-reel-be/internal/model"

	"gorm.io/gorm"
)

// Load reads the full catalog and its embeddings from Postgres and joins
// them into a Store. Titles without a stored embedding are skipped; they
// can never be scored so they do not belong in the matrix.
func Load(ctx context.Context, db *gorm.DB) (*Store, error) {
	var animes []model.Anime
	if err := db.WithContext(ctx).Preload("Genres").Find(&animes).Error; err != nil {
		return nil, fmt.Errorf("load anime catalog: %w", err)
	}

	var embeddings []model.AnimeEmbedding
	if err := db.WithContext(ctx).Find(&embeddings).Error; err != nil {
		return nil, fmt.Errorf("load anime embeddings: %w", err)
	}

	vectorsById := make(map[int][]float32, len(embeddings))
	for i := range embeddings {
		vectorsById[embeddings[i].AnimeId] = embeddings[i].FeatureVector.Slice()
	}

	animeMapper := mapper.NewAnimeMapper()
	items := make([]Item, 0, len(animes))
	for i := range animes {
		vec, ok := vectorsById[animes[i].AnimeId]
		if !ok {
			continue
		}
		items = append(items, Item{
			Anime:  *animeMapper.ToEntity(&animes[i]),
			Vector: vec,
		})
	}

	return New(items)
}
