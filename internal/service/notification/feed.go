package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// List returns the authenticated user's notifications, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ns, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return ns, nil
}

// MarkRead flags one of the authenticated user's notifications as read.
// Another user's notification reads as ErrNotFound.
func (s *Service) MarkRead(ctx context.Context, notificationID uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if notificationID == uuid.Nil {
		return nil, domain.NewValidationError("notification_id", "required")
	}

	n, err := s.notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return n, nil
}
