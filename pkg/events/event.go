package events

import "time"

// Event is the contract for everything published on the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "FEEDBACK_RECEIVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewFeedbackReceived records one interaction applied to a taste profile.
func NewFeedbackReceived(userId int, animeId int, reason string, affectedIds []int) Event {
	return BaseEvent{
		Type: "FEEDBACK_RECEIVED",
		Data: map[string]interface{}{
			"user_id":      userId,
			"anime_id":     animeId,
			"reason":       reason,
			"affected_ids": affectedIds,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserDeleted records the removal of a user and their taste profile.
func NewUserDeleted(userId int) Event {
	return BaseEvent{
		Type: "USER_DELETED",
		Data: map[string]interface{}{
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
}
