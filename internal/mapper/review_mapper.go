package mapper

import (
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(r *model.Review) *entity.Review {
	if r == nil {
		return nil
	}
	return &entity.Review{
		ReviewId:          r.ReviewId,
		AnimeId:           r.AnimeId,
		Username:          r.Username,
		ReviewText:        r.ReviewText,
		SentimentPolarity: r.SentimentPolarity,
	}
}

func (m *ReviewMapper) ToEntities(reviews []*model.Review) []*entity.Review {
	entities := make([]*entity.Review, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
