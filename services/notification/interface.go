package notification

import (
	"context"

	"wirehaul/models"
)

// Broadcaster pushes a real-time event to a user's session channel.
// Delivery is at-most-once and purely advisory.
type Broadcaster interface {
	Emit(ctx context.Context, userID, event string, payload map[string]string) error
}

// NotificationService persists notification records and pushes real-time
// events on trip lifecycle transitions.
type NotificationService interface {
	// Notify persists a notification row for the user and fires the
	// real-time push without waiting for delivery.
	Notify(ctx context.Context, userID, message string, status models.NotificationStatus) error
	// NotifyAdmins writes one notification row per administrator. Admins
	// poll, so no real-time emit is performed.
	NotifyAdmins(ctx context.Context, message string) error
	// ListForUser returns the recipient's notifications, most recent
	// first, capped at limit.
	ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
}
