package domain

import "time"

// NotificationType classifies how the delivery surface renders a notification.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
)

// Notification is an append-only message addressed to a single member.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	CreatedAt time.Time
}
