package notification

import (
	"context"
	"fmt"

	userRepo "wirehaul/database/repository/user"

	"firebase.google.com/go/v4/messaging"
)

// FCMBroadcaster delivers real-time events as FCM data messages addressed
// to the recipient's registered device token.
type FCMBroadcaster struct {
	Client *messaging.Client
	Users  userRepo.UserRepository
}

// NewFCMBroadcaster wires the FCM client and the identity lookup used to
// resolve device tokens.
func NewFCMBroadcaster(client *messaging.Client, users userRepo.UserRepository) *FCMBroadcaster {
	return &FCMBroadcaster{Client: client, Users: users}
}

// Emit sends one data message; no acknowledgment is awaited and there is
// no retry.
func (b *FCMBroadcaster) Emit(ctx context.Context, userID, event string, payload map[string]string) error {
	u, err := b.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("emit: could not resolve user %s: %w", userID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("emit: user %s has no registered device token", userID)
	}

	data := make(map[string]string, len(payload)+1)
	for k, v := range payload {
		data[k] = v
	}
	data["event"] = event

	msg := &messaging.Message{
		Token: u.FCMToken,
		Data:  data,
	}
	if _, err := b.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("emit: failed to send FCM message to user %s: %w", userID, err)
	}
	return nil
}
