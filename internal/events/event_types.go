package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProfileMutated EventType = "profile_mutated"
	EventUserDeleted    EventType = "user_deleted"
	EventPasswordReset  EventType = "password_reset"
)

// Actor identifies who triggered an event.
type Actor struct {
	UserID string `json:"user_id"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TargetID  string      `json:"target_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProfileMutatedPayload lists committed columns and staged notification titles.
type ProfileMutatedPayload struct {
	Columns             []string `json:"columns"`
	NotificationTitles  []string `json:"notification_titles"`
	NotificationsStored bool     `json:"notifications_stored"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	AvatarPublicID string `json:"avatar_public_id,omitempty"`
	AvatarRemoved  bool   `json:"avatar_removed"`
}
