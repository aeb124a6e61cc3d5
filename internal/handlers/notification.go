package handlers

import (
	"credlytics/internal/models"
	"credlytics/internal/services/notification"
	"credlytics/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications returns the user's unread notifications.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	notifications, err := h.notificationService.ListUnread(c.Context(), claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", notifications)
}
