package models

import "time"

// TripStatus is the lifecycle state of a trip request.
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusAccepted  TripStatus = "accepted"
	TripStatusRejected  TripStatus = "rejected"
	TripStatusCompleted TripStatus = "completed"
)

// Terminal reports whether no further transition may leave the status.
func (s TripStatus) Terminal() bool {
	return s == TripStatusRejected || s == TripStatusCompleted
}

// Trip is the authoritative record of a single booking attempt.
// DriverID always holds the driver's business identifier (DXL/...), never
// a storage id.
type Trip struct {
	ID          string     `bson:"id" json:"id"`
	UserID      string     `bson:"user_id" json:"userId"`
	DriverID    string     `bson:"driver_id" json:"driverId"`
	Pickup      string     `bson:"pickup" json:"pickup"`
	Destination string     `bson:"destination" json:"destination"`
	Price       float64    `bson:"price" json:"price"`
	TripDate    time.Time  `bson:"trip_date" json:"tripDate"`
	Status      TripStatus `bson:"status" json:"status"`
	// TrackingID is assigned exactly once, at the pending->accepted
	// transition, and is immutable thereafter.
	TrackingID *string   `bson:"tracking_id,omitempty" json:"trackingId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// TripRequest is the booking-intent input.
type TripRequest struct {
	DriverID    string    `json:"driverId" binding:"required"`
	Pickup      string    `json:"pickup" binding:"required"`
	Destination string    `json:"destination" binding:"required"`
	Price       float64   `json:"price" binding:"required"`
	TripDate    time.Time `json:"tripDate" binding:"required"`
}
