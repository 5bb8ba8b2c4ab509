package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"wirehaul/models"
)

func validRequest() models.TripRequest {
	return models.TripRequest{
		DriverID:    "DXL/AB12CD34",
		Pickup:      "Ikeja",
		Destination: "Lekki",
		Price:       1500,
		TripDate:    time.Now().Add(48 * time.Hour),
	}
}

func TestCreateBooking(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateBooking(context.Background(), "user-1", validRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if created.Status != models.TripStatusPending {
		t.Fatalf("new booking must be pending, got %s", created.Status)
	}
	if created.TrackingID != nil {
		t.Fatalf("new booking must not carry a tracking id")
	}

	hist, err := f.store.GetByTripID(created.ID)
	if err != nil || hist == nil {
		t.Fatalf("history mirror missing: %v", err)
	}
	if hist.Status != models.TripStatusPending || hist.DriverID != created.DriverID || hist.Price != created.Price {
		t.Fatalf("history mirror out of sync: %+v", hist)
	}

	if len(f.mailer.bookings) != 1 {
		t.Fatalf("expected one booking mail, got %d", len(f.mailer.bookings))
	}
	if got := f.mailer.bookings[0].DriverEmail; got != "driver@example.com" {
		t.Fatalf("booking mail addressed to %q", got)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture()
	var vErr *ValidationError

	cases := []struct {
		name   string
		mutate func(*models.TripRequest)
	}{
		{"empty pickup", func(r *models.TripRequest) { r.Pickup = "  " }},
		{"empty destination", func(r *models.TripRequest) { r.Destination = "" }},
		{"price below floor", func(r *models.TripRequest) { r.Price = 499.99 }},
		{"zero trip date", func(r *models.TripRequest) { r.TripDate = time.Time{} }},
		{"past trip date", func(r *models.TripRequest) { r.TripDate = time.Now().Add(-time.Hour) }},
		{"missing driver", func(r *models.TripRequest) { r.DriverID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := f.svc.CreateBooking(context.Background(), "user-1", req)
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateBookingUnknownDriver(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.DriverID = "DXL/NOPE0000"

	if _, err := f.svc.CreateBooking(context.Background(), "user-1", req); !errors.Is(err, ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

// A failing mail provider must not fail the booking itself.
func TestCreateBookingSurvivesMailFailure(t *testing.T) {
	f := newFixture()
	f.mailer.err = errors.New("mail api down")

	created, err := f.svc.CreateBooking(context.Background(), "user-1", validRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if got, _ := f.store.GetByID(created.ID); got == nil {
		t.Fatalf("booking not persisted despite mail failure")
	}
}

func TestPendingForDriver(t *testing.T) {
	f := newFixture()
	f.seedPending("trip-1")
	f.seedPending("trip-2")

	if _, err := f.svc.Accept(context.Background(), "auth-driver-1", "trip-2"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	pending, err := f.svc.PendingForDriver(context.Background(), "auth-driver-1")
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "trip-1" {
		t.Fatalf("expected only trip-1 pending, got %+v", pending)
	}

	if _, err := f.svc.PendingForDriver(context.Background(), "user-1"); !errors.Is(err, ErrNotADriver) {
		t.Fatalf("expected ErrNotADriver for plain user, got %v", err)
	}
}

func TestHistoryQueries(t *testing.T) {
	f := newFixture()
	f.seedPending("trip-1")
	if _, err := f.svc.Reject(context.Background(), "auth-driver-1", "trip-1"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	byDriver, err := f.svc.HistoryForDriver(context.Background(), "auth-driver-1")
	if err != nil {
		t.Fatalf("driver history: %v", err)
	}
	if len(byDriver) != 1 || byDriver[0].Status != models.TripStatusRejected {
		t.Fatalf("driver history out of sync: %+v", byDriver)
	}

	byClient, err := f.svc.HistoryForClient(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("client history: %v", err)
	}
	if len(byClient) != 1 || byClient[0].TripID != "trip-1" {
		t.Fatalf("client history out of sync: %+v", byClient)
	}
}
