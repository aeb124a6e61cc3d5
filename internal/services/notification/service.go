// Package notification reads user notifications. Notifications are
// produced by an external process; this service never creates or
// mutates them.
package notification

import (
	"context"

	"credlytics/internal/models"
	"credlytics/internal/repositories"
)

// Service defines notification read operations.
type Service interface {
	ListUnread(ctx context.Context, userID uint) ([]models.Notification, error)
}

type service struct {
	repo repositories.NotificationRepository
}

// NewService creates a new notification service.
func NewService(repo repositories.NotificationRepository) Service {
	if repo == nil {
		panic("notification repo is required")
	}
	return &service{repo: repo}
}

func (s *service) ListUnread(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.repo.ListUnread(ctx, userID)
}
