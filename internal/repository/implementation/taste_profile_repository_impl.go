package implementation

import (
	"context"
	"errors"
	"time"

	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/mapper"
	"anime-reel-be/internal/model"
	"anime-reel-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TasteProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TasteProfileMapper
}

func NewTasteProfileRepository(db *gorm.DB) contract.TasteProfileRepository {
	return &TasteProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewTasteProfileMapper(),
	}
}

func (r *TasteProfileRepositoryImpl) FindByUserId(ctx context.Context, userId int) (*entity.TasteProfile, error) {
	var m model.UserTasteProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *TasteProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.TasteProfile) error {
	profile.LastUpdated = time.Now()
	m, err := r.mapper.ToModel(profile)
	if err != nil {
		return err
	}

	// INSERT ... ON CONFLICT (user_id) DO UPDATE
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"taste_profile", "last_updated"}),
	}).Create(m).Error
}

func (r *TasteProfileRepositoryImpl) DeleteByUserId(ctx context.Context, userId int) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.UserTasteProfile{}).Error
}
