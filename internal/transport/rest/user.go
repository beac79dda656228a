package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
}

// UserHandler serves user directory endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// Me handles GET /api/v1/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Get handles GET /api/v1/users/{id}. The path segment is a user id, or a
// username for anything that does not parse as a UUID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("id")

	var (
		user *domain.User
		err  error
	)
	if id, parseErr := uuid.Parse(key); parseErr == nil {
		user, err = h.svc.GetByID(r.Context(), id)
	} else {
		user, err = h.svc.GetByUsername(r.Context(), key)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// List handles GET /api/v1/users. A non-empty q parameter switches to a
// username substring search.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		users []domain.User
		err   error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		users, err = h.svc.Search(r.Context(), q)
	} else {
		users, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": toUserResponses(users)})
}
