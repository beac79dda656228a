package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/pkg/ctxutil"
)

// CreateInput holds parameters for the create operation.
type CreateInput struct {
	Text       string
	Visibility domain.Visibility
}

// Validate validates the create input against the configured text limit.
func (i CreateInput) Validate(maxTextLen int) error {
	var errs []domain.FieldError

	switch n := utf8.RuneCountInString(i.Text); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case n > maxTextLen:
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("must be at most %d characters", maxTextLen)})
	}

	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be public, protected or private"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create stores a new idea and fans out notifications to the followers
// allowed to see it. The insert and the fan-out run in one transaction, so
// an idea never appears without its notifications or the other way round.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Text = strings.TrimSpace(input.Text)
	if input.Visibility == "" {
		input.Visibility = domain.VisibilityPublic
	}
	if err := input.Validate(s.cfg.MaxTextLength); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("idea.Create get author: %w", err)
	}

	var created *domain.Idea
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newIdea := &domain.Idea{
			ID:         uuid.New(),
			AuthorID:   userID,
			Text:       input.Text,
			Visibility: input.Visibility,
			CreatedAt:  time.Now().UTC(),
		}

		i, err := s.ideas.Create(txCtx, newIdea)
		if err != nil {
			return fmt.Errorf("create idea: %w", err)
		}

		if err := s.notifier.FanOut(txCtx, i, author); err != nil {
			return fmt.Errorf("fan out: %w", err)
		}

		created = i
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Create: %w", err)
	}

	s.log.InfoContext(ctx, "idea created",
		slog.String("idea_id", created.ID.String()),
		slog.String("visibility", created.Visibility.String()))

	return created, nil
}
