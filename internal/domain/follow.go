package domain

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge is a directed follow relationship. At most one edge may exist
// per ordered (follower, following) pair, and follower != following.
//
// Lifecycle: created pending, resolved to approved or denied exactly once
// by the following party, and deleted by either party (unfollow or
// remove-follower) while approved. A denied edge stays denied; there is no
// re-request path.
type FollowEdge struct {
	ID          uuid.UUID
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	Status      FollowStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FollowRequest is a pending edge joined with the requesting user, as
// returned by the received-requests listing.
type FollowRequest struct {
	EdgeID    uuid.UUID
	Follower  User
	CreatedAt time.Time
}
