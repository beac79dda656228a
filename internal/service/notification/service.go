// Package notification implements the idea fan-out and the notification
// feed.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// notificationRepo defines the notification repository interface needed by
// notification service.
type notificationRepo interface {
	CreateBatch(ctx context.Context, ns []domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error)
}

// followRepo defines the follow repository interface needed by notification
// service.
type followRepo interface {
	ListApprovedFollowerIDs(ctx context.Context, followingID uuid.UUID) ([]uuid.UUID, error)
}

// Service implements notification operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	follows       followRepo
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo, follows followRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		follows:       follows,
	}
}
