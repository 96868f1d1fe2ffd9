package implementation

import (
	"context"
	"errors"
	"strings"

	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/mapper"
	"anime-reel-be/internal/model"
	"anime-reel-be/internal/repository/contract"
	"anime-reel-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AnimeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnimeMapper
}

func NewAnimeRepository(db *gorm.DB) contract.AnimeRepository {
	return &AnimeRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnimeMapper(),
	}
}

func (r *AnimeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnimeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Anime, error) {
	var m model.Anime
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Genres"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AnimeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Anime, error) {
	var models []*model.Anime
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Genres"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnimeRepositoryImpl) FindFamilyIds(ctx context.Context, animeId int) ([]int, error) {
	var m model.Anime
	err := r.db.WithContext(ctx).
		Select("anime_id", "title", "title_english").
		Where("anime_id = ?", animeId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No title record: the family is just the item itself.
			return []int{animeId}, nil
		}
		return nil, err
	}

	base := BaseTitle(m.Title, m.TitleEnglish)

	var ids []int
	err = r.db.WithContext(ctx).
		Model(&model.Anime{}).
		Where("title ILIKE ? OR title_english ILIKE ?", base+"%", base+"%").
		Pluck("anime_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = []int{animeId}
	}
	return ids, nil
}

// BaseTitle truncates a display title at the first ':' or at the literal
// ' Season' so that sequels and seasons share one feedback signal. The
// heuristic is approximate string matching on purpose.
func BaseTitle(title string, titleEnglish *string) string {
	display := title
	if titleEnglish != nil && *titleEnglish != "" {
		display = *titleEnglish
	}
	if idx := strings.Index(display, ":"); idx >= 0 {
		display = display[:idx]
	}
	if idx := strings.Index(display, " Season"); idx >= 0 {
		display = display[:idx]
	}
	return strings.TrimSpace(display)
}
