package notification

import "context"

// NotificationService persists in-app notification rows. Delivery is
// best-effort; callers log failures and never roll back their own writes.
type NotificationService interface {
	Notify(ctx context.Context, staffID string, title string, body string, link string) error
	GetMyNotifications(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}
