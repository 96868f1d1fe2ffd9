package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserTasteProfile is the single persisted recommendation record per user.
// TasteProfile is a JSONB document: {liked_ids, disliked_ids, scrolled_past_ids}.
type UserTasteProfile struct {
	UserId       int            `gorm:"primaryKey;column:user_id"`
	TasteProfile datatypes.JSON `gorm:"type:jsonb"`
	LastUpdated  time.Time
}

func (UserTasteProfile) TableName() string {
	return "user_taste_profiles"
}
