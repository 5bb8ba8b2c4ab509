package trip

import (
	"context"
	"fmt"

	"wirehaul/models"

	"go.uber.org/zap"
)

// Track resolves a tracking id into the client-safe location projection:
// driver identity basics, the last reported coordinates, and the
// reverse-geocoded address. A failed geocode degrades to coordinates only.
func (s *DefaultTripService) Track(ctx context.Context, trackingID string) (*models.TrackingInfo, error) {
	t, err := s.Trips.GetByTrackingID(trackingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up trip by tracking id: %w", err)
	}
	if t == nil {
		return nil, ErrTripNotFound
	}

	driver, err := s.Drivers.GetByDriverID(t.DriverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	if driver.Location == nil {
		return nil, ErrNoLocation
	}

	driverName := ""
	if identity, err := s.Users.GetByID(driver.AuthID); err == nil && identity != nil {
		driverName = identity.FullName
	}

	info := &models.TrackingInfo{
		DriverName:  driverName,
		PhoneNumber: driver.Phone,
		TruckType:   driver.TruckType,
		Coordinates: models.TrackingCoordinates{
			Lat: driver.Location.Lat(),
			Lng: driver.Location.Lng(),
		},
	}

	addr, err := s.Geocoder.Reverse(ctx, driver.Location.Lat(), driver.Location.Lng())
	if err != nil {
		s.Logger.Warn("reverse geocode failed, returning coordinates only",
			zap.String("trackingId", trackingID), zap.Error(err))
		return info, nil
	}
	info.Address = models.TrackingAddress{
		City:    addr.City,
		State:   addr.State,
		Country: addr.Country,
		Village: addr.Village,
	}
	return info, nil
}

// UpdateLocation stores the authenticated driver's current position.
func (s *DefaultTripService) UpdateLocation(ctx context.Context, driverAuthID string, lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return validationErr("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return validationErr("longitude must be between -180 and 180")
	}

	driver, err := s.Drivers.GetByAuthID(driverAuthID)
	if err != nil {
		return fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver == nil {
		return ErrNotADriver
	}

	if err := s.Drivers.UpdateLocation(driver.AuthID, models.NewGeoPoint(lat, lng)); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	return nil
}
