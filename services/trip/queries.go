package trip

import (
	"context"
	"fmt"

	"wirehaul/models"
)

// PendingForDriver lists the pending trips addressed to the authenticated
// driver, newest first.
func (s *DefaultTripService) PendingForDriver(ctx context.Context, driverAuthID string) ([]models.Trip, error) {
	driver, err := s.Drivers.GetByAuthID(driverAuthID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver == nil {
		return nil, ErrNotADriver
	}
	trips, err := s.Trips.PendingByDriver(driver.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending trips: %w", err)
	}
	return trips, nil
}

// HistoryForDriver lists booking history for the authenticated driver.
func (s *DefaultTripService) HistoryForDriver(ctx context.Context, driverAuthID string) ([]models.BookingHistory, error) {
	driver, err := s.Drivers.GetByAuthID(driverAuthID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver == nil {
		return nil, ErrNotADriver
	}
	rows, err := s.History.ListByDriver(driver.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver history: %w", err)
	}
	return rows, nil
}

// HistoryForClient lists booking history for a requester.
func (s *DefaultTripService) HistoryForClient(ctx context.Context, userID string) ([]models.BookingHistory, error) {
	rows, err := s.History.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client history: %w", err)
	}
	return rows, nil
}
