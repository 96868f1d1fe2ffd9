package dto

// GenerateReelRequest is the recommendation request. Either UserId or
// Username must be present; Username marks a first-time session and makes
// the session booster eligible.
type GenerateReelRequest struct {
	UserId        *int     `json:"user_id"`
	Username      *string  `json:"username"`
	LikedAnime    []string `json:"liked_anime"`
	SeenAnimeIds  []int    `json:"seen_anime_ids"`
	AllowExplicit bool     `json:"allow_explicit"`
	Genres        []string `json:"genres"`
}

func (r *GenerateReelRequest) IsNewUserSession() bool {
	return r.Username != nil
}

type GenerateReelResponse struct {
	UserId             int                  `json:"user_id"`
	Recommendations    []RecommendationItem `json:"recommendations"`
	RecommendationType string               `json:"recommendation_type"`
}

// Recommendation types reported to the client.
const (
	RecommendationTypePersonalized      = "personalized_model"
	RecommendationTypeFallbackColdStart = "fallback_cold_start"
	RecommendationTypeFallbackNoMatch   = "fallback_no_match"
)

// RecommendationItem is one reel entry. Score carries the static catalog
// mean rating (null when the catalog has none); InitialScore carries the
// ranking score the reel was ordered by (model, boosted, or fallback).
type RecommendationItem struct {
	Id               int       `json:"id"`
	Title            string    `json:"title"`
	TrailerId        *string   `json:"trailer_id"`
	Score            *float64  `json:"score"`
	Rank             *int      `json:"rank"`
	Genres           string    `json:"genres"`
	Comments         []Comment `json:"comments"`
	InitialScore     float64   `json:"initial_score"`
	PositiveKeywords *string   `json:"positive_keywords"`
	NegativeKeywords *string   `json:"negative_keywords"`
	Synopsis         *string   `json:"synopsis"`
}

type Comment struct {
	User string `json:"user"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// RescoreRequest asks for fresh model scores on an id list; the response
// is the bare id to score map.
type RescoreRequest struct {
	UserId   int   `json:"user_id" validate:"required"`
	AnimeIds []int `json:"anime_ids" validate:"required,min=1"`
}
