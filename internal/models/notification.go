package models

import "time"

// Notification types by severity.
const (
	NotificationUrgent   = "urgent"
	NotificationAdvisory = "advisory"
	NotificationInfo     = "info"
)

// Notification is a read-only signal record. This service only lists
// unread notifications; generation happens out of process.
type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Message   string    `gorm:"not null" json:"message"`
	Type      string    `gorm:"not null;default:'info'" json:"type"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
