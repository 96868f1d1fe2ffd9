package model

type Review struct {
	ReviewId          int    `gorm:"primaryKey;autoIncrement;column:review_id"`
	AnimeId           int    `gorm:"not null;index;column:anime_id"`
	Username          string `gorm:"type:varchar(255)"`
	ReviewText        string `gorm:"type:text"`
	SentimentPolarity float64
}

func (Review) TableName() string {
	return "reviews"
}
