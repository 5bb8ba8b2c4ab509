package models

import "time"

// User is the slice of the identity store this service consumes. Account
// creation and credential handling live in the external auth service.
type User struct {
	ID       string `bson:"id" json:"id"`
	Email    string `bson:"email" json:"email"`
	FullName string `bson:"full_name" json:"full_name"`
	Role     string `bson:"role" json:"role"`
	// DriverRef weakly references the user's driver profile, if any.
	DriverRef *string   `bson:"driver_ref,omitempty" json:"driverRef,omitempty"`
	FCMToken  string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
