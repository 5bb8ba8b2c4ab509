package notificationRepo

import "wirehaul/models"

// NotificationRepository defines data access for notification records.
// Rows are append-only; there is no update path.
type NotificationRepository interface {
	// Create inserts one notification record.
	Create(n *models.Notification) error
	// CreateMany inserts a batch of notification records (admin fan-out).
	CreateMany(ns []models.Notification) error
	// ListByUser lists a recipient's notifications, most recent first,
	// capped at limit.
	ListByUser(userID string, limit int64) ([]models.Notification, error)
}
