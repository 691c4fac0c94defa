package notification

import (
	"time"
)

type NotificationType string

const (
	TypeRequestApproved NotificationType = "request_approved"
	TypeRequestRejected NotificationType = "request_rejected"
)

// Notification represents a notification entity
type Notification struct {
	ID          string                 `json:"id"`
	RecipientID string                 `json:"recipient_id"`
	Type        NotificationType       `json:"type"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	Data        map[string]interface{} `json:"data,omitempty"`
	IsRead      bool                   `json:"is_read"`
	ReadAt      *time.Time             `json:"read_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
