package auth

import "github.com/osanchez/ideahub-backend/internal/domain"

// AuthResult is returned by operations that establish a session.
// RefreshToken carries the raw token; only its hash is persisted.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
