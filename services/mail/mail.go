package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wirehaul/models"

	"go.uber.org/zap"
)

// APIMailer posts emails to the external HTTP mail API.
type APIMailer struct {
	APIURL string
	Client *http.Client
	Logger *zap.Logger
}

// NewAPIMailer builds a mailer with a bounded-timeout HTTP client.
func NewAPIMailer(apiURL string, logger *zap.Logger) *APIMailer {
	return &APIMailer{
		APIURL: apiURL,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

type mailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (m *APIMailer) send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(mailRequest{To: to, Subject: subject, HTML: html})
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return fmt.Errorf("mail API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail API returned status %d: %s", resp.StatusCode, string(detail))
	}

	if m.Logger != nil {
		m.Logger.Info("email dispatched", zap.String("to", to), zap.String("subject", subject))
	}
	return nil
}

// SendBookingNotification emails the driver about a new booking request.
func (m *APIMailer) SendBookingNotification(ctx context.Context, p models.BookingMailPayload) error {
	return m.send(ctx, p.DriverEmail, "New Trip Booking Received!", bookingHTML(p))
}

// SendTripAcceptedMail emails the requester that the driver accepted.
func (m *APIMailer) SendTripAcceptedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	return m.send(ctx, p.UserEmail, "Your Trip Has Been Accepted", acceptedHTML(p))
}

// SendTripRejectedMail emails the requester that the driver declined.
func (m *APIMailer) SendTripRejectedMail(ctx context.Context, p models.TripDecisionMailPayload) error {
	return m.send(ctx, p.UserEmail, "Update On Your Trip Request", rejectedHTML(p))
}
