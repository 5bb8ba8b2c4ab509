package trip

import (
	"context"
	"errors"
	"testing"

	"wirehaul/models"
)

func acceptWithLocation(t *testing.T, f *fixture) string {
	t.Helper()
	f.seedPending("trip-1")
	trackingID, err := f.svc.Accept(context.Background(), "auth-driver-1", "trip-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := f.svc.UpdateLocation(context.Background(), "auth-driver-1", 6.6018, 3.3515); err != nil {
		t.Fatalf("update location: %v", err)
	}
	return trackingID
}

func TestTrack(t *testing.T) {
	f := newFixture()
	trackingID := acceptWithLocation(t, f)

	info, err := f.svc.Track(context.Background(), trackingID)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if info.DriverName != "Dan Driver" || info.PhoneNumber != "+2348012345678" || info.TruckType != "flatbed" {
		t.Fatalf("driver details wrong: %+v", info)
	}
	if info.Coordinates.Lat != 6.6018 || info.Coordinates.Lng != 3.3515 {
		t.Fatalf("coordinates wrong: %+v", info.Coordinates)
	}
	if info.Address.City != "Ikeja" || info.Address.Country != "Nigeria" {
		t.Fatalf("address wrong: %+v", info.Address)
	}
}

func TestTrackWithoutLocation(t *testing.T) {
	f := newFixture()
	f.seedPending("trip-1")
	trackingID, err := f.svc.Accept(context.Background(), "auth-driver-1", "trip-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := f.svc.Track(context.Background(), trackingID); !errors.Is(err, ErrNoLocation) {
		t.Fatalf("expected ErrNoLocation, got %v", err)
	}
}

func TestTrackUnknownTrackingID(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.Track(context.Background(), "TrP-2-3-missing"); !errors.Is(err, ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

// A geocoder outage degrades to coordinates only instead of failing the
// whole lookup.
func TestTrackSurvivesGeocodeFailure(t *testing.T) {
	f := newFixture()
	trackingID := acceptWithLocation(t, f)
	f.geocoder.addr = nil
	f.geocoder.err = errors.New("nominatim timeout")

	info, err := f.svc.Track(context.Background(), trackingID)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if info.Coordinates.Lat != 6.6018 {
		t.Fatalf("coordinates missing: %+v", info)
	}
	if info.Address != (models.TrackingAddress{}) {
		t.Fatalf("expected empty address on geocode failure, got %+v", info.Address)
	}
}

// Completion resets the driver, so the same tracking id must stop
// resolving to a position afterwards.
func TestTrackAfterCompleteReportsNoLocation(t *testing.T) {
	f := newFixture()
	trackingID := acceptWithLocation(t, f)

	if _, err := f.svc.Track(context.Background(), trackingID); err != nil {
		t.Fatalf("track before completion: %v", err)
	}
	if err := f.svc.Complete(context.Background(), trackingID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := f.svc.Track(context.Background(), trackingID); !errors.Is(err, ErrNoLocation) {
		t.Fatalf("expected ErrNoLocation after completion, got %v", err)
	}
}

func TestUpdateLocationValidation(t *testing.T) {
	f := newFixture()
	var vErr *ValidationError

	if err := f.svc.UpdateLocation(context.Background(), "auth-driver-1", 91, 0); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for bad latitude, got %v", err)
	}
	if err := f.svc.UpdateLocation(context.Background(), "auth-driver-1", 0, -181); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for bad longitude, got %v", err)
	}
	if err := f.svc.UpdateLocation(context.Background(), "user-1", 6.5, 3.3); !errors.Is(err, ErrNotADriver) {
		t.Fatalf("expected ErrNotADriver, got %v", err)
	}
}

func TestUpdateLocationStoresGeoJSONOrder(t *testing.T) {
	f := newFixture()
	if err := f.svc.UpdateLocation(context.Background(), "auth-driver-1", 6.6018, 3.3515); err != nil {
		t.Fatalf("update location: %v", err)
	}
	drv, _ := f.drivers.GetByAuthID("auth-driver-1")
	if drv.Location == nil {
		t.Fatalf("location not stored")
	}
	// GeoJSON stores [lng, lat].
	if drv.Location.Coordinates[0] != 3.3515 || drv.Location.Coordinates[1] != 6.6018 {
		t.Fatalf("coordinate order wrong: %+v", drv.Location.Coordinates)
	}
}
