package trip

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"wirehaul/models"
	"wirehaul/services/geocode"

	"go.uber.org/zap"
)

// memStore is an in-memory stand-in for the trip and history repositories.
// Transition takes the same compare-and-set shape as the Mongo
// implementation so the race tests exercise the real contention semantics.
type memStore struct {
	mu    sync.Mutex
	trips map[string]*models.Trip
	hist  map[string]*models.BookingHistory
}

func newMemStore() *memStore {
	return &memStore{
		trips: make(map[string]*models.Trip),
		hist:  make(map[string]*models.BookingHistory),
	}
}

func (s *memStore) CreateWithHistory(trip *models.Trip, hist *models.BookingHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	trip.CreatedAt, trip.UpdatedAt = now, now
	hist.CreatedAt, hist.UpdatedAt = now, now
	tc, hc := *trip, *hist
	s.trips[trip.ID] = &tc
	s.hist[hist.TripID] = &hc
	return nil
}

func (s *memStore) GetByID(id string) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (s *memStore) GetByTrackingID(trackingID string) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trips {
		if t.TrackingID != nil && *t.TrackingID == trackingID {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) Transition(tripID string, from, to models.TripStatus, trackingID *string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[tripID]
	if !ok || t.Status != from {
		return false, nil
	}
	t.Status = to
	t.UpdatedAt = time.Now()
	if trackingID != nil {
		id := *trackingID
		t.TrackingID = &id
	}
	if h, ok := s.hist[tripID]; ok {
		h.Status = to
		h.UpdatedAt = t.UpdatedAt
		if trackingID != nil {
			id := *trackingID
			h.TrackingID = &id
		}
	}
	return true, nil
}

func (s *memStore) PendingByDriver(driverID string) ([]models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Trip
	for _, t := range s.trips {
		if t.DriverID == driverID && t.Status == models.TripStatusPending {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) ListByDriver(driverID string) ([]models.BookingHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.BookingHistory
	for _, h := range s.hist {
		if h.DriverID == driverID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) ListByUser(userID string) ([]models.BookingHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.BookingHistory
	for _, h := range s.hist {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetByTripID(tripID string) (*models.BookingHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hist[tripID]
	if !ok {
		return nil, nil
	}
	c := *h
	return &c, nil
}

type memDriverRepo struct {
	mu      sync.Mutex
	drivers map[string]*models.Driver // keyed by business driver id
}

func newMemDriverRepo(drivers ...*models.Driver) *memDriverRepo {
	r := &memDriverRepo{drivers: make(map[string]*models.Driver)}
	for _, d := range drivers {
		c := *d
		r.drivers[d.DriverID] = &c
	}
	return r
}

func (r *memDriverRepo) Create(d *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.DriverID == "" {
		d.DriverID = "DXL/TEST" + time.Now().Format("0405")
	}
	c := *d
	r.drivers[d.DriverID] = &c
	return nil
}

func (r *memDriverRepo) GetByDriverID(driverID string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[driverID]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (r *memDriverRepo) GetByAuthID(authID string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drivers {
		if d.AuthID == authID {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memDriverRepo) UpdateLocation(authID string, loc *models.GeoPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.drivers {
		if d.AuthID == authID {
			d.Location = loc
			return nil
		}
	}
	return errors.New("driver not found")
}

func (r *memDriverRepo) SetActiveTrip(driverID, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[driverID]
	if !ok {
		return errors.New("driver not found")
	}
	d.ActiveTripID = &tripID
	return nil
}

func (r *memDriverRepo) ClearActiveTrip(driverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drivers[driverID]
	if !ok {
		return errors.New("driver not found")
	}
	d.ActiveTripID = nil
	d.Location = nil
	return nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		c := *u
		r.users[u.ID] = &c
	}
	return r
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *memUserRepo) ListAdmins() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == "admin" {
			out = append(out, *u)
		}
	}
	return out, nil
}

// recordingMailer captures sent payloads; err, when set, fails every send.
type recordingMailer struct {
	mu       sync.Mutex
	err      error
	bookings []models.BookingMailPayload
	accepted []models.TripDecisionMailPayload
	rejected []models.TripDecisionMailPayload
}

func (m *recordingMailer) SendBookingNotification(ctx context.Context, p models.BookingMailPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.bookings = append(m.bookings, p)
	return nil
}

func (m *recordingMailer) SendTripAcceptedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.accepted = append(m.accepted, p)
	return nil
}

func (m *recordingMailer) SendTripRejectedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rejected = append(m.rejected, p)
	return nil
}

type notifiedEvent struct {
	UserID  string
	Message string
	Status  models.NotificationStatus
}

// recordingNotifier captures Notify calls.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notifiedEvent
	admins []string
}

func (n *recordingNotifier) Notify(ctx context.Context, userID, message string, status models.NotificationStatus) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, notifiedEvent{UserID: userID, Message: message, Status: status})
	return nil
}

func (n *recordingNotifier) NotifyAdmins(ctx context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.admins = append(n.admins, message)
	return nil
}

func (n *recordingNotifier) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	return nil, nil
}

type stubGeocoder struct {
	addr *geocode.Address
	err  error
}

func (g *stubGeocoder) Reverse(ctx context.Context, lat, lng float64) (*geocode.Address, error) {
	return g.addr, g.err
}

// fixture holds a wired service with its fakes for assertions.
type fixture struct {
	svc      *DefaultTripService
	store    *memStore
	drivers  *memDriverRepo
	users    *memUserRepo
	mailer   *recordingMailer
	notifier *recordingNotifier
	geocoder *stubGeocoder
}

func newFixture() *fixture {
	driver := &models.Driver{
		ID:        "drv-storage-1",
		AuthID:    "auth-driver-1",
		DriverID:  "DXL/AB12CD34",
		Phone:     "+2348012345678",
		TruckType: "flatbed",
		Status:    models.DriverStatusApproved,
	}
	f := &fixture{
		store: newMemStore(),
		drivers: newMemDriverRepo(driver),
		users: newMemUserRepo(
			&models.User{ID: "user-1", Email: "client@example.com", FullName: "Ada Client", Role: "user"},
			&models.User{ID: "auth-driver-1", Email: "driver@example.com", FullName: "Dan Driver", Role: "user"},
			&models.User{ID: "admin-1", Email: "admin@example.com", FullName: "Root Admin", Role: "admin"},
		),
		mailer:   &recordingMailer{},
		notifier: &recordingNotifier{},
		geocoder: &stubGeocoder{addr: &geocode.Address{City: "Ikeja", State: "Lagos", Country: "Nigeria"}},
	}
	f.svc = &DefaultTripService{
		Trips:    f.store,
		History:  f.store,
		Drivers:  f.drivers,
		Users:    f.users,
		Mailer:   f.mailer,
		Notifier: f.notifier,
		Geocoder: f.geocoder,
		Logger:   zap.NewNop(),
		MinPrice: 500,
	}
	return f
}

// seedPending inserts a pending trip addressed to the fixture driver.
func (f *fixture) seedPending(id string) *models.Trip {
	t := &models.Trip{
		ID:          id,
		UserID:      "user-1",
		DriverID:    "DXL/AB12CD34",
		Pickup:      "Ikeja",
		Destination: "Lekki",
		Price:       1500,
		TripDate:    time.Now().Add(24 * time.Hour),
		Status:      models.TripStatusPending,
	}
	h := &models.BookingHistory{
		ID:     "h-" + id,
		TripID: id, UserID: t.UserID, DriverID: t.DriverID,
		Pickup: t.Pickup, Destination: t.Destination,
		Price: t.Price, TripDate: t.TripDate, Status: t.Status,
	}
	if err := f.store.CreateWithHistory(t, h); err != nil {
		panic(err)
	}
	return t
}
