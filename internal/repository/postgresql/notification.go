package postgresql

import (
	"context"
	"fmt"

	"github.com/kedaihq/staffops-backend-go/internal/domain/notification"
	"github.com/kedaihq/staffops-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

// Create implements notification.NotificationRepository.
func (n *notificationRepository) Create(ctx context.Context, notif *notification.Notification) error {
	q := GetQuerier(ctx, n.db)

	query := `
		INSERT INTO notifications (staff_id, title, body, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		notif.StaffID,
		notif.Title,
		notif.Body,
		notif.Link,
	).Scan(&notif.ID, &notif.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListByStaff implements notification.NotificationRepository.
func (n *notificationRepository) ListByStaff(ctx context.Context, staffID string) ([]notification.Notification, error) {
	q := GetQuerier(ctx, n.db)

	query := `
		SELECT id, staff_id, title, body, link, is_read, created_at
		FROM notifications
		WHERE staff_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var notif notification.Notification
		err := rows.Scan(
			&notif.ID, &notif.StaffID, &notif.Title, &notif.Body,
			&notif.Link, &notif.IsRead, &notif.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notif)
	}

	return notifications, nil
}

// MarkRead implements notification.NotificationRepository.
func (n *notificationRepository) MarkRead(ctx context.Context, id string, staffID string) error {
	q := GetQuerier(ctx, n.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1
		  AND staff_id = $2
	`

	commandTag, err := q.Exec(ctx, query, id, staffID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepository{db: db}
}
