package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByStaff(ctx context.Context, staffID string) ([]Notification, error)
	MarkRead(ctx context.Context, id string, staffID string) error
}
