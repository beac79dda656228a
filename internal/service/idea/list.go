package idea

import (
	"context"
	"fmt"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// ListOwn returns all of the authenticated user's ideas, newest first,
// private ones included.
func (s *Service) ListOwn(ctx context.Context) ([]domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ideas, err := s.ideas.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("idea.ListOwn: %w", err)
	}
	return ideas, nil
}

// ListByUser returns the named user's ideas filtered to what the
// authenticated viewer may see: everything for the author themself,
// public and protected for an approved follower, public only otherwise.
// An unknown username reads as ErrNotFound.
func (s *Service) ListByUser(ctx context.Context, username string) ([]domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("idea.ListByUser: %w", err)
	}

	if author.ID == userID {
		return s.ListOwn(ctx)
	}

	approved, err := s.follows.IsApprovedFollower(ctx, userID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("idea.ListByUser follow check: %w", err)
	}

	visibilities := []domain.Visibility{domain.VisibilityPublic}
	if approved {
		visibilities = append(visibilities, domain.VisibilityProtected)
	}

	ideas, err := s.ideas.ListByAuthor(ctx, author.ID, visibilities...)
	if err != nil {
		return nil, fmt.Errorf("idea.ListByUser: %w", err)
	}
	return ideas, nil
}

// Timeline returns the authenticated user's feed: their own ideas plus the
// public and protected ideas of the authors they follow, newest first.
func (s *Service) Timeline(ctx context.Context) ([]domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ideas, err := s.ideas.ListTimeline(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("idea.Timeline: %w", err)
	}
	return ideas, nil
}
