package models

import "time"

// DriverStatus is the approval state of a driver application.
type DriverStatus string

const (
	DriverStatusNone     DriverStatus = "none"
	DriverStatusPending  DriverStatus = "pending"
	DriverStatusApproved DriverStatus = "approved"
	DriverStatusRejected DriverStatus = "rejected"
)

// GeoPoint is a GeoJSON point, coordinates ordered [lng, lat].
type GeoPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from latitude and longitude.
func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Lat returns the latitude component.
func (p *GeoPoint) Lat() float64 { return p.Coordinates[1] }

// Lng returns the longitude component.
func (p *GeoPoint) Lng() float64 { return p.Coordinates[0] }

// Driver is a driver profile. DriverID is the business identifier
// (DXL/<8 alnum>) used by trips and booking history; AuthID is the weak
// reference back to the identity store.
type Driver struct {
	ID            string       `bson:"id" json:"id"`
	AuthID        string       `bson:"auth_id" json:"authId"`
	DriverID      string       `bson:"driver_id" json:"driverId"`
	LicenseNumber string       `bson:"license_number" json:"licenseNumber"`
	Phone         string       `bson:"phone" json:"phone"`
	TruckType     string       `bson:"truck_type" json:"truckType"`
	Country       string       `bson:"country" json:"country"`
	State         string       `bson:"state" json:"state"`
	Town          string       `bson:"town" json:"town"`
	Price         float64      `bson:"price" json:"price"`
	Rating        float64      `bson:"rating" json:"rating"`
	Description   string       `bson:"description" json:"description"`
	Experience    int          `bson:"experience" json:"experience"`
	Status        DriverStatus `bson:"status" json:"status"`
	Verified      bool         `bson:"verified" json:"verified"`
	// Location is nil until the driver first reports a position. An unset
	// location is never defaulted to (0,0).
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	// ActiveTripID references the driver's single active trip, cleared on
	// completion.
	ActiveTripID *string   `bson:"active_trip_id,omitempty" json:"activeTripId,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// DriverApplication is the driver onboarding input. Review and approval
// happen in the external admin workflow.
type DriverApplication struct {
	LicenseNumber string  `json:"licenseNumber" binding:"required"`
	Phone         string  `json:"phone" binding:"required"`
	TruckType     string  `json:"truckType" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	State         string  `json:"state" binding:"required"`
	Town          string  `json:"town" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Experience    int     `json:"experience" binding:"required"`
}
