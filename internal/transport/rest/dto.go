package rest

import (
	"strings"
	"time"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// Enum values travel uppercase on the wire; storage and domain keep them
// lowercase.

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

type ideaResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	Text       string    `json:"text"`
	Visibility string    `json:"visibility"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toIdeaResponse(i *domain.Idea) ideaResponse {
	return ideaResponse{
		ID:         i.ID.String(),
		AuthorID:   i.AuthorID.String(),
		Text:       i.Text,
		Visibility: strings.ToUpper(i.Visibility.String()),
		CreatedAt:  i.CreatedAt,
	}
}

func toIdeaResponses(ideas []domain.Idea) []ideaResponse {
	out := make([]ideaResponse, 0, len(ideas))
	for i := range ideas {
		out = append(out, toIdeaResponse(&ideas[i]))
	}
	return out
}

type followEdgeResponse struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toFollowEdgeResponse(e *domain.FollowEdge) followEdgeResponse {
	return followEdgeResponse{
		ID:          e.ID.String(),
		FollowerID:  e.FollowerID.String(),
		FollowingID: e.FollowingID.String(),
		Status:      strings.ToUpper(e.Status.String()),
		CreatedAt:   e.CreatedAt,
	}
}

type followRequestResponse struct {
	ID        string       `json:"id"`
	Follower  userResponse `json:"follower"`
	CreatedAt time.Time    `json:"createdAt"`
}

func toFollowRequestResponses(reqs []domain.FollowRequest) []followRequestResponse {
	out := make([]followRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, followRequestResponse{
			ID:        reqs[i].EdgeID.String(),
			Follower:  toUserResponse(&reqs[i].Follower),
			CreatedAt: reqs[i].CreatedAt,
		})
	}
	return out
}

type notificationResponse struct {
	ID        string    `json:"id"`
	IdeaID    string    `json:"ideaId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationResponses(ns []domain.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(ns))
	for i := range ns {
		out = append(out, toNotificationResponse(&ns[i]))
	}
	return out
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		IdeaID:    n.IdeaID.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
