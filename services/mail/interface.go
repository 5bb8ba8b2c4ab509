package mail

import (
	"context"

	"wirehaul/models"
)

// Service sends the trip lifecycle emails. Delivery failures are logged by
// callers and never abort a trip operation; the booking remains visible by
// polling.
type Service interface {
	SendBookingNotification(ctx context.Context, p models.BookingMailPayload) error
	SendTripAcceptedMail(ctx context.Context, p models.TripDecisionMailPayload) error
	SendTripRejectedMail(ctx context.Context, p models.TripDecisionMailPayload) error
}
