package follow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// Request creates a pending follow edge from the authenticated user toward
// the target. Any existing edge for the pair, whatever its status, returns
// ErrAlreadyExists; a denied request cannot be re-issued.
func (s *Service) Request(ctx context.Context, followingID uuid.UUID) (*domain.FollowEdge, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if followingID == uuid.Nil {
		return nil, domain.NewValidationError("following_id", "required")
	}
	if followingID == userID {
		return nil, domain.NewValidationError("following_id", "cannot follow yourself")
	}

	// Surface a clean not-found for a bogus target instead of relying on
	// the FK violation.
	if _, err := s.users.GetByID(ctx, followingID); err != nil {
		return nil, fmt.Errorf("follow.Request target: %w", err)
	}

	now := time.Now().UTC()
	edge := &domain.FollowEdge{
		ID:          uuid.New(),
		FollowerID:  userID,
		FollowingID: followingID,
		Status:      domain.FollowStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.follows.Create(ctx, edge)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("follow.Request: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("follow.Request: %w", err)
	}

	s.log.InfoContext(ctx, "follow requested",
		slog.String("follower_id", userID.String()),
		slog.String("following_id", followingID.String()))

	return created, nil
}
