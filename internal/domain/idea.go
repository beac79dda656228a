package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxIdeaTextLen bounds the length of an idea's text in runes.
const MaxIdeaTextLen = 200

// Idea is a short text post with a per-idea visibility level.
// CreatedAt is server-assigned and immutable; visibility is the only
// mutable field after creation.
type Idea struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	Text       string
	Visibility Visibility
	CreatedAt  time.Time
}

// IsAuthor reports whether the given user authored the idea.
func (i *Idea) IsAuthor(userID uuid.UUID) bool {
	return i.AuthorID == userID
}
