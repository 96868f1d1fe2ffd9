package dto

type SuggestRequest struct {
	LikedAnimes []string `json:"liked_animes" validate:"required"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
