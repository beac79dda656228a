package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// FanOut writes one notification per approved follower allowed to view the
// freshly created idea. Private ideas notify nobody. The caller runs this
// inside the same transaction as the idea insert, so a failed fan-out rolls
// the idea back too.
func (s *Service) FanOut(ctx context.Context, idea *domain.Idea, author *domain.User) error {
	if idea.Visibility == domain.VisibilityPrivate {
		return nil
	}

	followerIDs, err := s.follows.ListApprovedFollowerIDs(ctx, idea.AuthorID)
	if err != nil {
		return fmt.Errorf("notification.FanOut list followers: %w", err)
	}

	now := time.Now().UTC()
	message := fmt.Sprintf("%s posted a new idea", author.Username)

	batch := make([]domain.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		if !domain.CanView(followerID, idea, true) {
			continue
		}
		batch = append(batch, domain.Notification{
			ID:        uuid.New(),
			UserID:    followerID,
			IdeaID:    idea.ID,
			Message:   message,
			CreatedAt: now,
		})
	}
	if len(batch) == 0 {
		return nil
	}

	if err := s.notifications.CreateBatch(ctx, batch); err != nil {
		return fmt.Errorf("notification.FanOut: %w", err)
	}

	s.log.InfoContext(ctx, "idea fanned out",
		slog.String("idea_id", idea.ID.String()),
		slog.Int("recipients", len(batch)))
	return nil
}
