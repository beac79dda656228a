package follow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// RespondInput holds parameters for the respond operation.
type RespondInput struct {
	EdgeID uuid.UUID
	Status domain.FollowStatus
}

// Validate validates the respond input.
func (i RespondInput) Validate() error {
	var errs []domain.FieldError

	if i.EdgeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "request_id", Message: "required"})
	}
	if !i.Status.IsResponse() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be approved or denied"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Respond resolves a pending request to approved or denied. A request
// resolves exactly once. Only a pending request addressed to the caller
// is respondable; anything else reads as ErrNotFound so edge ids leak
// nothing about other users' requests or their resolution state.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.FollowEdge, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	edge, err := s.follows.GetByID(ctx, input.EdgeID)
	if err != nil {
		return nil, fmt.Errorf("follow.Respond get edge: %w", err)
	}

	if edge.FollowingID != userID {
		return nil, fmt.Errorf("follow.Respond not the requested user: %w", domain.ErrNotFound)
	}
	if edge.Status != domain.FollowStatusPending {
		return nil, fmt.Errorf("follow.Respond already %s: %w", edge.Status, domain.ErrNotFound)
	}

	// ResolvePending updates only while still pending; a concurrent
	// respond that won the race surfaces as the same ErrNotFound.
	resolved, err := s.follows.ResolvePending(ctx, input.EdgeID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("follow.Respond: %w", err)
	}

	s.log.InfoContext(ctx, "follow request resolved",
		slog.String("edge_id", resolved.ID.String()),
		slog.String("status", resolved.Status.String()))

	return resolved, nil
}
