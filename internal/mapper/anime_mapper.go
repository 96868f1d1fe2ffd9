package mapper

import (
	"anime-reel-be/internal/entity"
	"anime-reel-be/internal/model"
)

type AnimeMapper struct{}

func NewAnimeMapper() *AnimeMapper {
	return &AnimeMapper{}
}

func (m *AnimeMapper) ToEntity(a *model.Anime) *entity.Anime {
	if a == nil {
		return nil
	}

	genres := make([]string, len(a.Genres))
	for i, g := range a.Genres {
		genres[i] = g.Name
	}

	return &entity.Anime{
		AnimeId:          a.AnimeId,
		Title:            a.Title,
		TitleEnglish:     a.TitleEnglish,
		Synopsis:         a.Synopsis,
		PositiveKeywords: a.PositiveKeywords,
		NegativeKeywords: a.NegativeKeywords,
		PromoLink:        a.PromoLink,
		Studio:           a.Studio,
		MeanScore:        a.MeanScore,
		OverallRank:      a.OverallRank,
		Genres:           genres,
	}
}

func (m *AnimeMapper) ToEntities(animes []*model.Anime) []*entity.Anime {
	entities := make([]*entity.Anime, len(animes))
	for i, a := range animes {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
