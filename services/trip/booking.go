package trip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wirehaul/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the booking intent, resolves the addressed
// driver, and writes the trip plus its booking-history mirror in one
// transaction. The driver notification email is best-effort: a mail
// failure never rolls back the trip, the driver still sees the booking by
// polling.
func (s *DefaultTripService) CreateBooking(ctx context.Context, userID string, req models.TripRequest) (*models.Trip, error) {
	if strings.TrimSpace(req.DriverID) == "" {
		return nil, validationErr("driver id is required")
	}
	if strings.TrimSpace(req.Pickup) == "" {
		return nil, validationErr("pickup is required")
	}
	if strings.TrimSpace(req.Destination) == "" {
		return nil, validationErr("destination is required")
	}
	if req.Price < s.MinPrice {
		return nil, validationErr(fmt.Sprintf("price must be at least %.2f", s.MinPrice))
	}
	if req.TripDate.IsZero() {
		return nil, validationErr("trip date is required")
	}
	if req.TripDate.Before(time.Now()) {
		return nil, validationErr("trip date must be in the future")
	}

	driver, err := s.Drivers.GetByDriverID(req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver %s: %w", req.DriverID, err)
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}

	trip := &models.Trip{
		ID:          uuid.New().String(),
		UserID:      userID,
		DriverID:    driver.DriverID,
		Pickup:      strings.TrimSpace(req.Pickup),
		Destination: strings.TrimSpace(req.Destination),
		Price:       req.Price,
		TripDate:    req.TripDate,
		Status:      models.TripStatusPending,
	}
	hist := &models.BookingHistory{
		ID:          uuid.New().String(),
		TripID:      trip.ID,
		UserID:      trip.UserID,
		DriverID:    trip.DriverID,
		Pickup:      trip.Pickup,
		Destination: trip.Destination,
		Price:       trip.Price,
		TripDate:    trip.TripDate,
		Status:      models.TripStatusPending,
	}

	if err := s.Trips.CreateWithHistory(trip, hist); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.sendBookingMail(ctx, trip, driver)
	return trip, nil
}

func (s *DefaultTripService) sendBookingMail(ctx context.Context, trip *models.Trip, driver *models.Driver) {
	driverIdentity, err := s.Users.GetByID(driver.AuthID)
	if err != nil || driverIdentity == nil || driverIdentity.Email == "" {
		s.Logger.Warn("skipping booking email, driver identity unresolved",
			zap.String("driverId", driver.DriverID), zap.Error(err))
		return
	}

	bookerName := ""
	if booker, err := s.Users.GetByID(trip.UserID); err == nil && booker != nil {
		bookerName = booker.FullName
	}

	payload := models.BookingMailPayload{
		DriverName:  driverIdentity.FullName,
		DriverEmail: driverIdentity.Email,
		BookerName:  bookerName,
		Pickup:      trip.Pickup,
		Destination: trip.Destination,
		TripDate:    trip.TripDate,
		Price:       trip.Price,
	}
	if err := s.Mailer.SendBookingNotification(ctx, payload); err != nil {
		s.Logger.Warn("failed to send booking notification email",
			zap.String("tripId", trip.ID), zap.Error(err))
	}
}
