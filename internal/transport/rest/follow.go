package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/osanchez/ideahub-backend/internal/domain"
	"github.com/osanchez/ideahub-backend/internal/service/follow"
)

// followService defines the minimal interface needed by FollowHandler.
type followService interface {
	Request(ctx context.Context, followingID uuid.UUID) (*domain.FollowEdge, error)
	Respond(ctx context.Context, input follow.RespondInput) (*domain.FollowEdge, error)
	Unfollow(ctx context.Context, followingID uuid.UUID) error
	RemoveFollower(ctx context.Context, followerID uuid.UUID) error
	ListRequests(ctx context.Context) ([]domain.FollowRequest, error)
	ListFollowing(ctx context.Context) ([]domain.User, error)
	ListFollowers(ctx context.Context) ([]domain.User, error)
}

// FollowHandler serves the follow graph endpoints.
type FollowHandler struct {
	svc followService
	log *slog.Logger
}

// NewFollowHandler creates a FollowHandler.
func NewFollowHandler(svc followService, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{svc: svc, log: logger.With("handler", "follow")}
}

type respondRequest struct {
	Status string `json:"status"`
}

// Request handles POST /api/v1/users/{id}/follow.
func (h *FollowHandler) Request(w http.ResponseWriter, r *http.Request) {
	followingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	edge, err := h.svc.Request(r.Context(), followingID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFollowEdgeResponse(edge))
}

// Respond handles POST /api/v1/follow-requests/{id}.
func (h *FollowHandler) Respond(w http.ResponseWriter, r *http.Request) {
	edgeID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req respondRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	status, err := domain.ParseFollowStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	edge, err := h.svc.Respond(r.Context(), follow.RespondInput{
		EdgeID: edgeID,
		Status: status,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFollowEdgeResponse(edge))
}

// Unfollow handles DELETE /api/v1/users/{id}/follow.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followingID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Unfollow(r.Context(), followingID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFollower handles DELETE /api/v1/followers/{id}.
func (h *FollowHandler) RemoveFollower(w http.ResponseWriter, r *http.Request) {
	followerID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveFollower(r.Context(), followerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRequests handles GET /api/v1/follow-requests.
func (h *FollowHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListRequests(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"requests": toFollowRequestResponses(reqs)})
}

// ListFollowing handles GET /api/v1/following.
func (h *FollowHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListFollowing(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": toUserResponses(users)})
}

// ListFollowers handles GET /api/v1/followers.
func (h *FollowHandler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListFollowers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": toUserResponses(users)})
}
