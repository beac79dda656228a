package domain

import "strings"

// Visibility controls which viewers may read an idea.
// Values are stored lowercase; the transport layer renders them uppercase.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityProtected, VisibilityPrivate:
		return true
	}
	return false
}

// ParseVisibility canonicalizes a visibility token. Parsing is
// case-insensitive, so both "PUBLIC" and "public" are accepted.
// Returns ErrValidation (wrapped) for unknown tokens.
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", NewValidationError("visibility", "must be one of public, protected, private")
	}
	return v, nil
}

// FollowStatus is the approval state of a follow edge.
// An edge starts pending and is resolved exactly once.
type FollowStatus string

const (
	FollowStatusPending  FollowStatus = "pending"
	FollowStatusApproved FollowStatus = "approved"
	FollowStatusDenied   FollowStatus = "denied"
)

func (s FollowStatus) String() string { return string(s) }

func (s FollowStatus) IsValid() bool {
	switch s {
	case FollowStatusPending, FollowStatusApproved, FollowStatusDenied:
		return true
	}
	return false
}

// ParseFollowStatus canonicalizes a follow status token (case-insensitive).
func ParseFollowStatus(s string) (FollowStatus, error) {
	st := FollowStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("status", "must be one of pending, approved, denied")
	}
	return st, nil
}

// IsResponse reports whether the status is a valid answer to a pending
// follow request. Pending itself is not a response.
func (s FollowStatus) IsResponse() bool {
	return s == FollowStatusApproved || s == FollowStatusDenied
}
