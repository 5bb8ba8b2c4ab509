package historyRepo

import "wirehaul/models"

// HistoryRepository defines read access to the booking-history projection.
// Writes flow exclusively through the trip repository so the mirror never
// drifts from the authoritative record.
type HistoryRepository interface {
	// ListByDriver lists history rows for a business driver id, newest first.
	ListByDriver(driverID string) ([]models.BookingHistory, error)
	// ListByUser lists history rows for a requester, newest first.
	ListByUser(userID string) ([]models.BookingHistory, error)
	// GetByTripID fetches the mirror row for a trip.
	GetByTripID(tripID string) (*models.BookingHistory, error)
}
