package driverRepo

import "wirehaul/models"

// DriverRepository defines data access for driver profiles.
type DriverRepository interface {
	// Create inserts a new driver profile, assigning the business driver
	// id if one has not been assigned yet.
	Create(driver *models.Driver) error
	// GetByDriverID retrieves a driver by business id (DXL/...).
	GetByDriverID(driverID string) (*models.Driver, error)
	// GetByAuthID retrieves a driver by the identity weak reference.
	GetByAuthID(authID string) (*models.Driver, error)
	// UpdateLocation stores the driver's last reported position.
	UpdateLocation(authID string, loc *models.GeoPoint) error
	// SetActiveTrip records the driver's single active trip.
	SetActiveTrip(driverID string, tripID string) error
	// ClearActiveTrip resets the driver after trip completion: the active
	// trip reference and the reported location are cleared.
	ClearActiveTrip(driverID string) error
}
