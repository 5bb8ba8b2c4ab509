package tasks

import (
	"encoding/json"

	"wirehaul/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendBookingMail  = "mail:booking"
	TypeSendAcceptedMail = "mail:accepted"
	TypeSendRejectedMail = "mail:rejected"
)

// NewBookingMailTask wraps a booking-notification email for the queue.
func NewBookingMailTask(payload models.BookingMailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendBookingMail, b), nil
}

// NewDecisionMailTask wraps an accepted/rejected email for the queue.
func NewDecisionMailTask(taskType string, payload models.TripDecisionMailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, b), nil
}
