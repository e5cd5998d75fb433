package dto

import (
	"time"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
)

// UpdateRoleRequest payload for POST /admin/users/update-role.
type UpdateRoleRequest struct {
	TargetID string                `json:"targetId"`
	Changes  domain.ProfileChanges `json:"changes"`
}

// ChangePasswordRequest payload for POST /admin/users/change-password.
type ChangePasswordRequest struct {
	TargetID string `json:"targetId"`
	Password string `json:"password"`
}

// DeleteUserRequest payload for POST /admin/users/delete.
type DeleteUserRequest struct {
	TargetID string `json:"targetId"`
}

// DeleteAssetRequest payload for POST /admin/assets/delete.
type DeleteAssetRequest struct {
	URL string `json:"url"`
}

// SuccessResponse is the body of every successful admin mutation.
type SuccessResponse struct {
	Success bool     `json:"success"`
	Changed []string `json:"changed,omitempty"`
}

// AssetResponse describes an uploaded image.
type AssetResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format,omitempty"`
	Bytes    int    `json:"bytes,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// NotificationResponse is one entry of a member's notification list.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationsFromDomain converts notifications for the API.
func NotificationsFromDomain(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      string(n.Type),
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
