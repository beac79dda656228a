package follow

import (
	"context"
	"fmt"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// ListRequests returns the pending follow requests addressed to the
// authenticated user, newest first.
func (s *Service) ListRequests(ctx context.Context) ([]domain.FollowRequest, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	requests, err := s.follows.ListPendingReceived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("follow.ListRequests: %w", err)
	}
	return requests, nil
}

// ListFollowing returns the users the authenticated user follows.
func (s *Service) ListFollowing(ctx context.Context) ([]domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.follows.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("follow.ListFollowing: %w", err)
	}
	return users, nil
}

// ListFollowers returns the authenticated user's approved followers.
func (s *Service) ListFollowers(ctx context.Context) ([]domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("follow.ListFollowers: %w", err)
	}
	return users, nil
}
