package mail

import (
	"context"
	"fmt"

	"wirehaul/models"
	"wirehaul/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueMailer hands emails to the asynq worker instead of calling the mail
// API on the request path. The background worker performs the actual send.
type QueueMailer struct {
	Client *asynq.Client
}

// NewQueueMailer wraps an asynq client as a mail Service.
func NewQueueMailer(client *asynq.Client) *QueueMailer {
	return &QueueMailer{Client: client}
}

// SendBookingNotification enqueues the new-booking email for the driver.
func (q *QueueMailer) SendBookingNotification(ctx context.Context, p models.BookingMailPayload) error {
	task, err := tasks.NewBookingMailTask(p)
	if err != nil {
		return fmt.Errorf("failed to build booking mail task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue booking mail: %w", err)
	}
	return nil
}

// SendTripAcceptedMail enqueues the accepted email for the requester.
func (q *QueueMailer) SendTripAcceptedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	task, err := tasks.NewDecisionMailTask(tasks.TypeSendAcceptedMail, p)
	if err != nil {
		return fmt.Errorf("failed to build accepted mail task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue accepted mail: %w", err)
	}
	return nil
}

// SendTripRejectedMail enqueues the rejected email for the requester.
func (q *QueueMailer) SendTripRejectedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	task, err := tasks.NewDecisionMailTask(tasks.TypeSendRejectedMail, p)
	if err != nil {
		return fmt.Errorf("failed to build rejected mail task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue rejected mail: %w", err)
	}
	return nil
}
