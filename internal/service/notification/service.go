package notification

import (
	"context"
	"fmt"

	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/jwt"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
}

// Notify implements notification.NotificationService.
func (n *NotificationServiceImpl) Notify(ctx context.Context, staffID string, title string, body string, link string) error {
	notif := notification.Notification{
		StaffID: staffID,
		Title:   title,
		Body:    body,
		Link:    link,
	}

	if err := n.NotificationRepository.Create(ctx, &notif); err != nil {
		return fmt.Errorf("failed to notify staff %s: %w", staffID, err)
	}

	return nil
}

// GetMyNotifications implements notification.NotificationService.
func (n *NotificationServiceImpl) GetMyNotifications(ctx context.Context) ([]notification.Notification, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return n.NotificationRepository.ListByStaff(ctx, identity.StaffID)
}

// MarkRead implements notification.NotificationService.
func (n *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	return n.NotificationRepository.MarkRead(ctx, id, identity.StaffID)
}

func NewNotificationService(repo notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{NotificationRepository: repo}
}
