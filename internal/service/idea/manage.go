package idea

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// Get returns a single idea if the authenticated viewer may see it.
// A hidden idea reads as ErrNotFound rather than ErrForbidden so its
// existence does not leak.
func (s *Service) Get(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	i, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("idea.Get: %w", err)
	}

	visible, err := s.canView(ctx, userID, i)
	if err != nil {
		return nil, fmt.Errorf("idea.Get visibility: %w", err)
	}
	if !visible {
		return nil, fmt.Errorf("idea.Get: %w", domain.ErrNotFound)
	}
	return i, nil
}

// SetVisibility changes an idea's visibility. Only the author may do this.
func (s *Service) SetVisibility(ctx context.Context, ideaID uuid.UUID, v domain.Visibility) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !v.IsValid() {
		return nil, domain.NewValidationError("visibility", "must be public, protected or private")
	}

	i, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("idea.SetVisibility: %w", err)
	}
	if !i.IsAuthor(userID) {
		return nil, fmt.Errorf("idea.SetVisibility not the author: %w", domain.ErrForbidden)
	}

	updated, err := s.ideas.UpdateVisibility(ctx, ideaID, v)
	if err != nil {
		return nil, fmt.Errorf("idea.SetVisibility: %w", err)
	}

	s.log.InfoContext(ctx, "idea visibility changed",
		slog.String("idea_id", ideaID.String()),
		slog.String("visibility", v.String()))

	return updated, nil
}

// Delete removes an idea. Only the author may do this; notifications that
// reference the idea cascade away with it.
func (s *Service) Delete(ctx context.Context, ideaID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	i, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return fmt.Errorf("idea.Delete: %w", err)
	}
	if !i.IsAuthor(userID) {
		return fmt.Errorf("idea.Delete not the author: %w", domain.ErrForbidden)
	}

	if err := s.ideas.Delete(ctx, ideaID); err != nil {
		return fmt.Errorf("idea.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "idea deleted", slog.String("idea_id", ideaID.String()))
	return nil
}
