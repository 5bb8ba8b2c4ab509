package models

import "time"

// NotificationStatus classifies the lifecycle event a notification reports.
type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusApproved NotificationStatus = "approved"
	NotificationStatusRejected NotificationStatus = "rejected"
)

// Notification is one user-visible lifecycle event. Rows are never updated
// after creation; the persisted row is the durable fallback for the
// fire-and-forget real-time push.
type Notification struct {
	ID        string             `bson:"id" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	Message   string             `bson:"message" json:"message"`
	Status    NotificationStatus `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
