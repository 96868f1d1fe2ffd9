package entity

type Review struct {
	ReviewId          int
	AnimeId           int
	Username          string
	ReviewText        string
	SentimentPolarity float64
}
