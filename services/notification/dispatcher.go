package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "wirehaul/database/repository/notification"
	userRepo "wirehaul/database/repository/user"
	"wirehaul/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultListLimit = 50

// DefaultNotificationService is the production dispatcher. The broadcaster
// is injected at construction; the dispatcher never reaches for a global.
type DefaultNotificationService struct {
	Repo        notificationRepo.NotificationRepository
	Users       userRepo.UserRepository
	Broadcaster Broadcaster
	Logger      *zap.Logger
}

// NewDefaultNotificationService wires the dispatcher. Broadcaster may be
// nil, in which case only the durable row is written.
func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	users userRepo.UserRepository,
	broadcaster Broadcaster,
	logger *zap.Logger,
) (*DefaultNotificationService, error) {
	if repo == nil || users == nil {
		return nil, fmt.Errorf("notification service initialization error: repo or user repository is nil")
	}
	return &DefaultNotificationService{
		Repo:        repo,
		Users:       users,
		Broadcaster: broadcaster,
		Logger:      logger,
	}, nil
}

// Notify persists the notification first; the persisted row is the durable
// source of truth a client can poll. The push runs on its own goroutine
// with a bounded context so the HTTP response never waits on delivery.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, message string, status models.NotificationStatus) error {
	n := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Message: message,
		Status:  status,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist notification for user %s: %w", userID, err)
	}

	if s.Broadcaster != nil {
		payload := map[string]string{
			"id":      n.ID,
			"message": message,
			"status":  string(status),
		}
		go func() {
			emitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Broadcaster.Emit(emitCtx, userID, "notification", payload); err != nil && s.Logger != nil {
				s.Logger.Warn("real-time notification delivery failed",
					zap.String("userId", userID), zap.Error(err))
			}
		}()
	}
	return nil
}

// NotifyAdmins fans one row out per administrator.
func (s *DefaultNotificationService) NotifyAdmins(ctx context.Context, message string) error {
	admins, err := s.Users.ListAdmins()
	if err != nil {
		return fmt.Errorf("failed to resolve administrators: %w", err)
	}

	rows := make([]models.Notification, 0, len(admins))
	for _, admin := range admins {
		rows = append(rows, models.Notification{
			ID:      uuid.New().String(),
			UserID:  admin.ID,
			Message: message,
			Status:  models.NotificationStatusPending,
		})
	}
	if err := s.Repo.CreateMany(rows); err != nil {
		return fmt.Errorf("failed to fan out admin notifications: %w", err)
	}
	return nil
}

// ListForUser returns the recipient's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	return s.Repo.ListByUser(userID, limit)
}
