package follow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// Unfollow removes the authenticated user's approved edge toward the given
// user. Pending and denied edges are not unfollowable; those read as
// ErrNotFound.
func (s *Service) Unfollow(ctx context.Context, followingID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if followingID == uuid.Nil {
		return domain.NewValidationError("following_id", "required")
	}

	if err := s.follows.DeleteApproved(ctx, userID, followingID); err != nil {
		return fmt.Errorf("follow.Unfollow: %w", err)
	}

	s.log.InfoContext(ctx, "unfollowed",
		slog.String("follower_id", userID.String()),
		slog.String("following_id", followingID.String()))
	return nil
}

// RemoveFollower deletes another user's approved edge toward the
// authenticated user. The removed follower may request again later.
func (s *Service) RemoveFollower(ctx context.Context, followerID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if followerID == uuid.Nil {
		return domain.NewValidationError("follower_id", "required")
	}

	if err := s.follows.DeleteApproved(ctx, followerID, userID); err != nil {
		return fmt.Errorf("follow.RemoveFollower: %w", err)
	}

	s.log.InfoContext(ctx, "follower removed",
		slog.String("follower_id", followerID.String()),
		slog.String("following_id", userID.String()))
	return nil
}
