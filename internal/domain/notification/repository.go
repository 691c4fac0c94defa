package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	CreateBatch(ctx context.Context, notifications []*Notification) error
	GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAllAsRead(ctx context.Context, recipientID string) error
}

// CreateNotificationRequest is the enqueue payload handed to the service.
type CreateNotificationRequest struct {
	RecipientID string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
}

// Service is the delivery collaborator the request lifecycle fires on
// terminal transitions. Notify must not block the caller.
type Service interface {
	Notify(req CreateNotificationRequest)
	Stop()
}
