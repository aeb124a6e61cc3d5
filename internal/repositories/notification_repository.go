package repositories

import (
	"context"
	"fmt"

	"credlytics/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines read access to user notifications.
// Notifications are produced out of process; this service only reads.
type NotificationRepository interface {
	// ListUnread retrieves the user's unread notifications, newest first.
	ListUnread(ctx context.Context, userID uint) ([]models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListUnread(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}
