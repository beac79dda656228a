package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/internal/service/idea"
)

// ideaService defines the minimal interface needed by IdeaHandler.
type ideaService interface {
	Create(ctx context.Context, input idea.CreateInput) (*domain.Idea, error)
	Get(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error)
	SetVisibility(ctx context.Context, ideaID uuid.UUID, v domain.Visibility) (*domain.Idea, error)
	Delete(ctx context.Context, ideaID uuid.UUID) error
	ListOwn(ctx context.Context) ([]domain.Idea, error)
	ListByUser(ctx context.Context, username string) ([]domain.Idea, error)
	Timeline(ctx context.Context) ([]domain.Idea, error)
}

// IdeaHandler serves idea endpoints.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

type createIdeaRequest struct {
	Text       string `json:"text"`
	Visibility string `json:"visibility"`
}

type setVisibilityRequest struct {
	Visibility string `json:"visibility"`
}

// parseVisibility maps the wire token onto the domain enum. An empty token
// is passed through so Create can apply its default.
func parseVisibility(w http.ResponseWriter, token string) (domain.Visibility, bool) {
	if token == "" {
		return "", true
	}
	v, err := domain.ParseVisibility(token)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid visibility")
		return "", false
	}
	return v, true
}

// Create handles POST /api/v1/ideas.
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	visibility, ok := parseVisibility(w, req.Visibility)
	if !ok {
		return
	}

	created, err := h.svc.Create(r.Context(), idea.CreateInput{
		Text:       req.Text,
		Visibility: visibility,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIdeaResponse(created))
}

// Get handles GET /api/v1/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaResponse(found))
}

// SetVisibility handles PATCH /api/v1/ideas/{id}.
func (h *IdeaHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req setVisibilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	visibility, err := domain.ParseVisibility(req.Visibility)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid visibility")
		return
	}

	updated, err := h.svc.SetVisibility(r.Context(), id, visibility)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toIdeaResponse(updated))
}

// Delete handles DELETE /api/v1/ideas/{id}.
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListOwn handles GET /api/v1/ideas.
func (h *IdeaHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.svc.ListOwn(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ideas": toIdeaResponses(ideas)})
}

// ListByUser handles GET /api/v1/users/{username}/ideas. An unknown
// username answers 404.
func (h *IdeaHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.svc.ListByUser(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ideas": toIdeaResponses(ideas)})
}

// Timeline handles GET /api/v1/timeline.
func (h *IdeaHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.svc.Timeline(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ideas": toIdeaResponses(ideas)})
}
