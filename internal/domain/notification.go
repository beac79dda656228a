package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is written by the fan-out on idea creation, never directly
// by a client. Deleting the recipient or the subject idea cascades.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IdeaID    uuid.UUID
	Message   string
	Read      bool
	CreatedAt time.Time
}
