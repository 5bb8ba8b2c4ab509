package trip

import (
	"context"

	driverRepo "wirehaul/database/repository/driver"
	historyRepo "wirehaul/database/repository/history"
	tripRepo "wirehaul/database/repository/trip"
	userRepo "wirehaul/database/repository/user"
	"wirehaul/models"
	"wirehaul/services/geocode"
	"wirehaul/services/mail"
	"wirehaul/services/notification"

	"go.uber.org/zap"
)

// TripService orchestrates the trip lifecycle: booking intent, driver
// accept/reject, completion, history queries, and location tracking.
type TripService interface {
	// CreateBooking validates the intent, writes the trip and its history
	// mirror, and emails the driver best-effort.
	CreateBooking(ctx context.Context, userID string, req models.TripRequest) (*models.Trip, error)
	// Accept moves a pending trip to accepted for its addressed driver and
	// returns the newly assigned tracking id.
	Accept(ctx context.Context, driverAuthID, tripID string) (string, error)
	// Reject moves a pending trip to rejected and returns the updated trip.
	Reject(ctx context.Context, driverAuthID, tripID string) (*models.Trip, error)
	// Complete finalizes an accepted trip located by tracking id and
	// resets the assigned driver's active record.
	Complete(ctx context.Context, trackingID string) error
	// PendingForDriver lists pending trips addressed to the authenticated
	// driver, newest first.
	PendingForDriver(ctx context.Context, driverAuthID string) ([]models.Trip, error)
	// HistoryForDriver lists booking history for the authenticated driver.
	HistoryForDriver(ctx context.Context, driverAuthID string) ([]models.BookingHistory, error)
	// HistoryForClient lists booking history for a requester.
	HistoryForClient(ctx context.Context, userID string) ([]models.BookingHistory, error)
	// Track returns the client-safe location projection for a tracking id.
	Track(ctx context.Context, trackingID string) (*models.TrackingInfo, error)
	// UpdateLocation stores the driver's current position.
	UpdateLocation(ctx context.Context, driverAuthID string, lat, lng float64) error
}

// DefaultTripService is the production trip lifecycle engine.
type DefaultTripService struct {
	Trips    tripRepo.TripRepository
	History  historyRepo.HistoryRepository
	Drivers  driverRepo.DriverRepository
	Users    userRepo.UserRepository
	Mailer   mail.Service
	Notifier notification.NotificationService
	Geocoder geocode.Service
	Logger   *zap.Logger
	// MinPrice is the configured price floor for a booking.
	MinPrice float64
}
