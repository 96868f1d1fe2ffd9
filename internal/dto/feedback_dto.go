package dto

import "anime-reel-be/internal/entity"

type FeedbackRequest struct {
	UserId  int    `json:"user_id" validate:"required"`
	AnimeId int    `json:"anime_id" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
}

type FeedbackResponse struct {
	Profile     *entity.TasteProfile `json:"profile"`
	AffectedIds []int                `json:"affected_ids"`
}

// ProfileUpdatedMessage is the in-process message published after a feedback
// upsert commits; the consumer re-warms the profile vector cache from it.
type ProfileUpdatedMessage struct {
	UserId int `json:"user_id"`
}
