package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	driverRepo "wirehaul/database/repository/driver"
	userRepo "wirehaul/database/repository/user"
	"wirehaul/models"
	"wirehaul/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyApplied means the user already has a driver profile.
	ErrAlreadyApplied = errors.New("driver application already exists")
	// ErrUnknownUser means the applicant's identity could not be resolved.
	ErrUnknownUser = errors.New("applicant not found")
)

// DriverService handles driver onboarding. Approval itself happens in the
// admin workflow; this service only files the application and alerts the
// administrators.
type DriverService interface {
	// Apply creates a pending driver profile for the authenticated user
	// and notifies administrators that a review is due.
	Apply(ctx context.Context, authID string, app models.DriverApplication) (*models.Driver, error)
	// ProfileFor returns the driver profile tied to an identity, or nil.
	ProfileFor(ctx context.Context, authID string) (*models.Driver, error)
}

// DefaultDriverService is the production driver onboarding service.
type DefaultDriverService struct {
	Drivers  driverRepo.DriverRepository
	Users    userRepo.UserRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// NewDefaultDriverService wires a driver service from its dependencies.
func NewDefaultDriverService(drivers driverRepo.DriverRepository, users userRepo.UserRepository, notifier notification.NotificationService, logger *zap.Logger) (*DefaultDriverService, error) {
	if drivers == nil || users == nil {
		return nil, errors.New("driver service requires driver and user repositories")
	}
	return &DefaultDriverService{Drivers: drivers, Users: users, Notifier: notifier, Logger: logger}, nil
}

func (s *DefaultDriverService) Apply(ctx context.Context, authID string, app models.DriverApplication) (*models.Driver, error) {
	user, err := s.Users.GetByID(authID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve applicant: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownUser
	}

	existing, err := s.Drivers.GetByAuthID(authID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	profile := &models.Driver{
		ID:            uuid.New().String(),
		AuthID:        authID,
		LicenseNumber: strings.TrimSpace(app.LicenseNumber),
		Phone:         strings.TrimSpace(app.Phone),
		TruckType:     strings.TrimSpace(app.TruckType),
		Country:       strings.TrimSpace(app.Country),
		State:         strings.TrimSpace(app.State),
		Town:          strings.TrimSpace(app.Town),
		Price:         app.Price,
		Description:   strings.TrimSpace(app.Description),
		Experience:    app.Experience,
		Status:        models.DriverStatusPending,
	}
	if err := s.Drivers.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to file driver application: %w", err)
	}

	if s.Notifier != nil {
		msg := fmt.Sprintf("New driver application from %s (%s) awaiting review.", user.FullName, profile.DriverID)
		if err := s.Notifier.NotifyAdmins(ctx, msg); err != nil {
			s.Logger.Warn("failed to notify admins of driver application",
				zap.String("driverId", profile.DriverID), zap.Error(err))
		}
	}
	return profile, nil
}

func (s *DefaultDriverService) ProfileFor(ctx context.Context, authID string) (*models.Driver, error) {
	return s.Drivers.GetByAuthID(authID)
}
