package model

type Anime struct {
	AnimeId          int     `gorm:"primaryKey;column:anime_id"`
	Title            string  `gorm:"type:text;not null;index"`
	TitleEnglish     *string `gorm:"type:text;index"`
	Synopsis         *string `gorm:"type:text"`
	PositiveKeywords *string `gorm:"type:text"`
	NegativeKeywords *string `gorm:"type:text"`
	PromoLink        *string `gorm:"type:text"`
	Studio           *string `gorm:"type:varchar(255)"`
	MeanScore        *float64
	OverallRank      *int
	Genres           []Genre `gorm:"many2many:anime_genres;foreignKey:AnimeId;joinForeignKey:AnimeId;References:GenreId;joinReferences:GenreId"`
}

func (Anime) TableName() string {
	return "animes"
}

type Genre struct {
	GenreId int    `gorm:"primaryKey;column:genre_id"`
	Name    string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Genre) TableName() string {
	return "genres"
}
