package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password hash lives in the
// credentials table, not on the user itself.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	IsActive  bool
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential holds a user's password hash. Exactly one per user.
type Credential struct {
	UserID       uuid.UUID
	PasswordHash string
	UpdatedAt    time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
