// Package idea implements idea authoring, per-viewer visibility and the
// timeline.
package idea

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/config"
	"github.com/osanchez/ideahub-backend/internal/domain"
)

// ideaRepo defines the idea repository interface needed by idea service.
type ideaRepo interface {
	Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	UpdateVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Idea, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAuthor(ctx context.Context, authorID uuid.UUID, visibilities ...domain.Visibility) ([]domain.Idea, error)
	ListTimeline(ctx context.Context, viewerID uuid.UUID) ([]domain.Idea, error)
}

// followRepo defines the follow repository interface needed by idea service.
type followRepo interface {
	IsApprovedFollower(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

// userRepo defines the user repository interface needed by idea service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// notifier delivers follower notifications for a freshly created idea.
type notifier interface {
	FanOut(ctx context.Context, idea *domain.Idea, author *domain.User) error
}

// txManager defines the transaction manager interface needed by idea service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements idea operations.
type Service struct {
	log      *slog.Logger
	ideas    ideaRepo
	follows  followRepo
	users    userRepo
	notifier notifier
	tx       txManager
	cfg      config.IdeasConfig
}

// NewService creates a new idea service instance.
func NewService(
	logger *slog.Logger,
	ideas ideaRepo,
	follows followRepo,
	users userRepo,
	notifier notifier,
	tx txManager,
	cfg config.IdeasConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "idea"),
		ideas:    ideas,
		follows:  follows,
		users:    users,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
	}
}

// canView resolves the follow relation and applies the visibility policy
// for a single idea.
func (s *Service) canView(ctx context.Context, viewerID uuid.UUID, idea *domain.Idea) (bool, error) {
	if idea.IsAuthor(viewerID) || idea.Visibility == domain.VisibilityPublic {
		return true, nil
	}
	if idea.Visibility == domain.VisibilityPrivate {
		return false, nil
	}
	approved, err := s.follows.IsApprovedFollower(ctx, viewerID, idea.AuthorID)
	if err != nil {
		return false, err
	}
	return domain.CanView(viewerID, idea, approved), nil
}
