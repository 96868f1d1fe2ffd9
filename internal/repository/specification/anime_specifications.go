package specification

import "gorm.io/gorm"

// TitleLike matches title or title_english case-insensitively.
type TitleLike struct {
	Pattern string
}

func (s TitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ? OR title_english ILIKE ?", s.Pattern, s.Pattern)
}
