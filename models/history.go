package models

import "time"

// BookingHistory is the denormalized, read-optimized mirror of a trip's
// externally visible fields. Rows are correlated to their trip by TripID;
// the descriptive fields are carried as data for historical queries.
type BookingHistory struct {
	ID          string     `bson:"id" json:"id"`
	TripID      string     `bson:"trip_id" json:"tripId"`
	UserID      string     `bson:"user_id" json:"userId"`
	DriverID    string     `bson:"driver_id" json:"driverId"`
	Pickup      string     `bson:"pickup" json:"pickup"`
	Destination string     `bson:"destination" json:"destination"`
	Price       float64    `bson:"price" json:"price"`
	TripDate    time.Time  `bson:"trip_date" json:"tripDate"`
	Status      TripStatus `bson:"status" json:"status"`
	TrackingID  *string    `bson:"tracking_id,omitempty" json:"trackingId,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
