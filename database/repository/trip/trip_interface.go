package tripRepo

import "wirehaul/models"

// TripRepository defines data access for trip records. Transition and
// CreateWithHistory also touch the booking-history projection so that the
// authoritative record and its mirror move together.
type TripRepository interface {
	// CreateWithHistory inserts the trip and its history mirror in one
	// transaction; both succeed or neither does.
	CreateWithHistory(trip *models.Trip, hist *models.BookingHistory) error
	// GetByID retrieves a trip by its unique id.
	GetByID(id string) (*models.Trip, error)
	// GetByTrackingID retrieves a trip by its assigned tracking id.
	GetByTrackingID(trackingID string) (*models.Trip, error)
	// Transition atomically moves a trip from one status to another and
	// mirrors the new status (and tracking id, when set) into the history
	// row. It reports false when the trip was not in the expected
	// from-status, leaving both records untouched.
	Transition(tripID string, from, to models.TripStatus, trackingID *string) (bool, error)
	// PendingByDriver lists pending trips addressed to a business driver
	// id, newest first.
	PendingByDriver(driverID string) ([]models.Trip, error)
}
