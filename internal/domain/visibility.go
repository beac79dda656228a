package domain

import "github.com/google/uuid"

// CanView is the single visibility decision for a (viewer, idea) pair.
// isApprovedFollower must be the fact "viewer is an approved follower of
// the idea's author", resolved against the follow graph by the caller.
//
//	public    everyone
//	protected author and approved followers
//	private   author only
//
// Every "may this caller read this idea" check in the codebase goes
// through here; no handler or service re-derives the rule.
func CanView(viewerID uuid.UUID, idea *Idea, isApprovedFollower bool) bool {
	switch idea.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityProtected:
		return idea.IsAuthor(viewerID) || isApprovedFollower
	case VisibilityPrivate:
		return idea.IsAuthor(viewerID)
	}
	return false
}
