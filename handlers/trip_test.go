package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wirehaul/handlers"
	"wirehaul/models"
	"wirehaul/services/trip"
	"wirehaul/utils"

	"github.com/gin-gonic/gin"
)

// stubTripService returns canned results so the tests exercise only the
// HTTP mapping.
type stubTripService struct {
	trip       *models.Trip
	trackingID string
	info       *models.TrackingInfo
	err        error
}

func (s *stubTripService) CreateBooking(ctx context.Context, userID string, req models.TripRequest) (*models.Trip, error) {
	return s.trip, s.err
}

func (s *stubTripService) Accept(ctx context.Context, driverAuthID, tripID string) (string, error) {
	return s.trackingID, s.err
}

func (s *stubTripService) Reject(ctx context.Context, driverAuthID, tripID string) (*models.Trip, error) {
	return s.trip, s.err
}

func (s *stubTripService) Complete(ctx context.Context, trackingID string) error { return s.err }

func (s *stubTripService) PendingForDriver(ctx context.Context, driverAuthID string) ([]models.Trip, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Trip{*s.trip}, nil
}

func (s *stubTripService) HistoryForDriver(ctx context.Context, driverAuthID string) ([]models.BookingHistory, error) {
	return nil, s.err
}

func (s *stubTripService) HistoryForClient(ctx context.Context, userID string) ([]models.BookingHistory, error) {
	return nil, s.err
}

func (s *stubTripService) Track(ctx context.Context, trackingID string) (*models.TrackingInfo, error) {
	return s.info, s.err
}

func (s *stubTripService) UpdateLocation(ctx context.Context, driverAuthID string, lat, lng float64) error {
	return s.err
}

// buildTestRouter wires a minimal engine with a fixed authenticated user.
func buildTestRouter(svc trip.TripService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set("userID", userID)
			c.Next()
		})
	}
	h := &handlers.TripHandler{Service: svc}
	r.POST("/api/trips", h.CreateTrip)
	r.GET("/api/trips/accept/:tripId", h.AcceptTrip)
	r.PUT("/api/trip/location", h.UpdateLocation)
	r.POST("/api/trip/track", h.TrackTrip)
	r.POST("/api/trip/done", h.CompleteTrip)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp
}

func TestCreateTripEnvelope(t *testing.T) {
	svc := &stubTripService{trip: &models.Trip{ID: "trip-1", Status: models.TripStatusPending}}
	r := buildTestRouter(svc, "user-1")

	w := doRequest(r, http.MethodPost, "/api/trips", models.TripRequest{
		DriverID:    "DXL/AB12CD34",
		Pickup:      "Ikeja",
		Destination: "Lekki",
		Price:       1500,
		TripDate:    time.Now().Add(24 * time.Hour),
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	if !resp.Success || resp.StatusCode != http.StatusOK {
		t.Fatalf("envelope wrong: %+v", resp)
	}
}

func TestCreateTripRejectsMissingFields(t *testing.T) {
	r := buildTestRouter(&stubTripService{}, "user-1")
	w := doRequest(r, http.MethodPost, "/api/trips", map[string]string{"pickup": "Ikeja"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Success {
		t.Fatalf("envelope should signal failure: %+v", resp)
	}
}

func TestCreateTripUnauthenticated(t *testing.T) {
	r := buildTestRouter(&stubTripService{}, "")
	w := doRequest(r, http.MethodPost, "/api/trips", models.TripRequest{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAcceptTripErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", trip.ErrTripNotFound, http.StatusNotFound},
		{"wrong driver", trip.ErrNotTripDriver, http.StatusForbidden},
		{"not a driver", trip.ErrNotADriver, http.StatusForbidden},
		{"already processed", trip.ErrAlreadyProcessed, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := buildTestRouter(&stubTripService{err: tc.err}, "user-1")
			w := doRequest(r, http.MethodGet, "/api/trips/accept/trip-1", nil)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestAcceptTripReturnsTrackingID(t *testing.T) {
	svc := &stubTripService{trackingID: utils.TrackingIDPrefix + "abc"}
	r := buildTestRouter(svc, "user-1")

	w := doRequest(r, http.MethodGet, "/api/trips/accept/trip-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["trackingId"] != utils.TrackingIDPrefix+"abc" {
		t.Fatalf("tracking id missing from payload: %+v", resp.Data)
	}
}

func TestTrackIsPublic(t *testing.T) {
	svc := &stubTripService{info: &models.TrackingInfo{DriverName: "Dan Driver"}}
	r := buildTestRouter(svc, "")

	w := doRequest(r, http.MethodPost, "/api/trip/track", map[string]string{"trackingId": "TrP-2-3-abc"})
	if w.Code != http.StatusOK {
		t.Fatalf("track must not require auth, got %d", w.Code)
	}
}

// Zero is a legal coordinate: a driver on the prime meridian or equator
// must be able to report a position.
func TestUpdateLocationAcceptsZeroCoordinates(t *testing.T) {
	r := buildTestRouter(&stubTripService{}, "user-1")

	for _, body := range []map[string]float64{
		{"lat": 51.4779, "lng": 0},
		{"lat": 0, "lng": 3.3515},
		{"lat": 0, "lng": 0},
	} {
		w := doRequest(r, http.MethodPut, "/api/trip/location", body)
		if w.Code != http.StatusOK {
			t.Fatalf("coordinates %v rejected with %d: %s", body, w.Code, w.Body.String())
		}
	}
}

func TestUpdateLocationRejectsMissingFields(t *testing.T) {
	r := buildTestRouter(&stubTripService{}, "user-1")
	w := doRequest(r, http.MethodPut, "/api/trip/location", map[string]float64{"lat": 6.6})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing lng, got %d", w.Code)
	}
}

func TestCompleteConflictMapping(t *testing.T) {
	r := buildTestRouter(&stubTripService{err: trip.ErrNotAccepted}, "")
	w := doRequest(r, http.MethodPost, "/api/trip/done", map[string]string{"trackingId": "TrP-2-3-abc"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
