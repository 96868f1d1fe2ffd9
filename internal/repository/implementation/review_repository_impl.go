package implementation

import (
	"context"

	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/mapper"
	"anime-reel-be/internal/model"
	"anime-reel-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) FindByAnimeIds(ctx context.Context, animeIds []int) ([]*entity.Review, error) {
	if len(animeIds) == 0 {
		return []*entity.Review{}, nil
	}
	var models []*model.Review
	if err := r.db.WithContext(ctx).Where("anime_id IN ?", animeIds).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
