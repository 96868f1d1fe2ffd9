package entity

import "anime-reel-be/internal/constant"

type Anime struct {
	AnimeId          int
	Title            string
	TitleEnglish     *string
	Synopsis         *string
	PositiveKeywords *string
	NegativeKeywords *string
	PromoLink        *string
	Studio           *string
	MeanScore        *float64
	OverallRank      *int
	Genres           []string
}

// DisplayTitle prefers the localized English title when present.
func (a *Anime) DisplayTitle() string {
	if a.TitleEnglish != nil && *a.TitleEnglish != "" {
		return *a.TitleEnglish
	}
	return a.Title
}

// IsExplicit reports whether the genre set intersects the explicit set.
func (a *Anime) IsExplicit() bool {
	for _, g := range a.Genres {
		if _, ok := constant.ExplicitGenres[g]; ok {
			return true
		}
	}
	return false
}

// HasPromoLink reports whether the title is recommendable at all; titles
// without a trailer never enter the candidate pool.
func (a *Anime) HasPromoLink() bool {
	return a.PromoLink != nil && *a.PromoLink != ""
}
