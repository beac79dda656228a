// Package follow implements the follow-request lifecycle: request,
// approve or deny, unfollow and remove-follower.
package follow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// followRepo defines the follow repository interface needed by follow service.
type followRepo interface {
	Create(ctx context.Context, e *domain.FollowEdge) (*domain.FollowEdge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FollowEdge, error)
	ResolvePending(ctx context.Context, id uuid.UUID, status domain.FollowStatus) (*domain.FollowEdge, error)
	DeleteApproved(ctx context.Context, followerID, followingID uuid.UUID) error
	ListPendingReceived(ctx context.Context, followingID uuid.UUID) ([]domain.FollowRequest, error)
	ListFollowing(ctx context.Context, followerID uuid.UUID) ([]domain.User, error)
	ListFollowers(ctx context.Context, followingID uuid.UUID) ([]domain.User, error)
}

// userRepo defines the user repository interface needed by follow service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements follow operations.
type Service struct {
	log     *slog.Logger
	follows followRepo
	users   userRepo
}

// NewService creates a new follow service instance.
func NewService(logger *slog.Logger, follows followRepo, users userRepo) *Service {
	return &Service{
		log:     logger.With("service", "follow"),
		follows: follows,
		users:   users,
	}
}
