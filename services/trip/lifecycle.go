package trip

import (
	"context"
	"fmt"

	"wirehaul/models"
	"wirehaul/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Accept moves a pending trip to accepted on behalf of its addressed
// driver. The tracking id is minted before the transition so the CAS write
// assigns status and tracking id together; whichever racing call wins the
// CAS is the one whose tracking id sticks.
func (s *DefaultTripService) Accept(ctx context.Context, driverAuthID, tripID string) (string, error) {
	driver, t, err := s.resolveDecision(driverAuthID, tripID)
	if err != nil {
		return "", err
	}

	requester, err := s.Users.GetByID(t.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve requester: %w", err)
	}
	if requester == nil {
		return "", ErrRequesterNotFound
	}

	trackingID := utils.TrackingIDPrefix + uuid.New().String()
	applied, err := s.Trips.Transition(t.ID, models.TripStatusPending, models.TripStatusAccepted, &trackingID)
	if err != nil {
		return "", fmt.Errorf("failed to accept trip: %w", err)
	}
	if !applied {
		return "", ErrAlreadyProcessed
	}

	if err := s.Drivers.SetActiveTrip(driver.DriverID, t.ID); err != nil {
		s.Logger.Warn("failed to record active trip on driver",
			zap.String("driverId", driver.DriverID), zap.String("tripId", t.ID), zap.Error(err))
	}

	s.notifyDecision(ctx, t, driver, requester, models.NotificationStatusApproved)
	return trackingID, nil
}

// Reject moves a pending trip to rejected on behalf of its addressed
// driver and returns the updated trip.
func (s *DefaultTripService) Reject(ctx context.Context, driverAuthID, tripID string) (*models.Trip, error) {
	driver, t, err := s.resolveDecision(driverAuthID, tripID)
	if err != nil {
		return nil, err
	}

	requester, err := s.Users.GetByID(t.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve requester: %w", err)
	}
	if requester == nil {
		return nil, ErrRequesterNotFound
	}

	applied, err := s.Trips.Transition(t.ID, models.TripStatusPending, models.TripStatusRejected, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to reject trip: %w", err)
	}
	if !applied {
		return nil, ErrAlreadyProcessed
	}

	t.Status = models.TripStatusRejected
	s.notifyDecision(ctx, t, driver, requester, models.NotificationStatusRejected)
	return t, nil
}

// Complete finalizes an accepted trip located by its tracking id and
// releases the assigned driver.
func (s *DefaultTripService) Complete(ctx context.Context, trackingID string) error {
	t, err := s.Trips.GetByTrackingID(trackingID)
	if err != nil {
		return fmt.Errorf("failed to look up trip by tracking id: %w", err)
	}
	if t == nil {
		return ErrTripNotFound
	}
	if t.Status != models.TripStatusAccepted {
		return ErrNotAccepted
	}

	applied, err := s.Trips.Transition(t.ID, models.TripStatusAccepted, models.TripStatusCompleted, nil)
	if err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	if !applied {
		return ErrAlreadyProcessed
	}

	if err := s.Drivers.ClearActiveTrip(t.DriverID); err != nil {
		s.Logger.Warn("failed to clear active trip on driver",
			zap.String("driverId", t.DriverID), zap.String("tripId", t.ID), zap.Error(err))
	}

	if err := s.Notifier.Notify(ctx, t.UserID,
		fmt.Sprintf("Your trip from %s to %s has been completed.", t.Pickup, t.Destination),
		models.NotificationStatusApproved); err != nil {
		s.Logger.Warn("failed to record completion notification",
			zap.String("tripId", t.ID), zap.Error(err))
	}
	return nil
}

// resolveDecision loads the acting driver and target trip for an
// accept/reject call and enforces that the trip is addressed to the caller.
func (s *DefaultTripService) resolveDecision(driverAuthID, tripID string) (*models.Driver, *models.Trip, error) {
	driver, err := s.Drivers.GetByAuthID(driverAuthID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve driver: %w", err)
	}
	if driver == nil {
		return nil, nil, ErrNotADriver
	}

	t, err := s.Trips.GetByID(tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up trip: %w", err)
	}
	if t == nil {
		return nil, nil, ErrTripNotFound
	}
	if t.DriverID != driver.DriverID {
		return nil, nil, ErrNotTripDriver
	}
	return driver, t, nil
}

// notifyDecision records the in-app notification and sends the decision
// email to the requester. Both are best-effort.
func (s *DefaultTripService) notifyDecision(ctx context.Context, t *models.Trip, driver *models.Driver, requester *models.User, status models.NotificationStatus) {
	verb := "accepted"
	if status == models.NotificationStatusRejected {
		verb = "rejected"
	}
	msg := fmt.Sprintf("Your trip from %s to %s has been %s.", t.Pickup, t.Destination, verb)
	if err := s.Notifier.Notify(ctx, t.UserID, msg, status); err != nil {
		s.Logger.Warn("failed to record trip decision notification",
			zap.String("tripId", t.ID), zap.Error(err))
	}

	if requester.Email == "" {
		return
	}
	driverName := ""
	if identity, err := s.Users.GetByID(driver.AuthID); err == nil && identity != nil {
		driverName = identity.FullName
	}
	payload := models.TripDecisionMailPayload{
		UserEmail:   requester.Email,
		DriverName:  driverName,
		DriverPhone: driver.Phone,
		Pickup:      t.Pickup,
		Destination: t.Destination,
		TripDate:    t.TripDate,
	}

	var err error
	if status == models.NotificationStatusApproved {
		err = s.Mailer.SendTripAcceptedMail(ctx, payload)
	} else {
		err = s.Mailer.SendTripRejectedMail(ctx, payload)
	}
	if err != nil {
		s.Logger.Warn("failed to send trip decision email",
			zap.String("tripId", t.ID), zap.Error(err))
	}
}
