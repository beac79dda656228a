package rest

import "net/http"

// Handlers groups the handler set mounted by NewRouter.
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Idea         *IdeaHandler
	Follow       *FollowHandler
	Notification *NotificationHandler
	Health       *HealthHandler
}

// NewRouter mounts all API routes on a ServeMux. Authentication is
// enforced by the services; the mux only dispatches.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /api/v1/auth/password/change", h.Auth.ChangePassword)
	mux.HandleFunc("POST /api/v1/auth/password/reset", h.Auth.ResetPassword)

	mux.HandleFunc("GET /api/v1/users", h.User.List)
	mux.HandleFunc("GET /api/v1/users/me", h.User.Me)
	mux.HandleFunc("GET /api/v1/users/{id}", h.User.Get)
	mux.HandleFunc("GET /api/v1/users/{username}/ideas", h.Idea.ListByUser)

	mux.HandleFunc("POST /api/v1/users/{id}/follow", h.Follow.Request)
	mux.HandleFunc("DELETE /api/v1/users/{id}/follow", h.Follow.Unfollow)
	mux.HandleFunc("GET /api/v1/follow-requests", h.Follow.ListRequests)
	mux.HandleFunc("POST /api/v1/follow-requests/{id}", h.Follow.Respond)
	mux.HandleFunc("GET /api/v1/following", h.Follow.ListFollowing)
	mux.HandleFunc("GET /api/v1/followers", h.Follow.ListFollowers)
	mux.HandleFunc("DELETE /api/v1/followers/{id}", h.Follow.RemoveFollower)

	mux.HandleFunc("POST /api/v1/ideas", h.Idea.Create)
	mux.HandleFunc("GET /api/v1/ideas", h.Idea.ListOwn)
	mux.HandleFunc("GET /api/v1/ideas/{id}", h.Idea.Get)
	mux.HandleFunc("PATCH /api/v1/ideas/{id}", h.Idea.SetVisibility)
	mux.HandleFunc("DELETE /api/v1/ideas/{id}", h.Idea.Delete)
	mux.HandleFunc("GET /api/v1/timeline", h.Idea.Timeline)

	mux.HandleFunc("GET /api/v1/notifications", h.Notification.List)
	mux.HandleFunc("POST /api/v1/notifications/{id}/read", h.Notification.MarkRead)

	return mux
}
