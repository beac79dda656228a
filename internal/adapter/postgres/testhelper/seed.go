package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osanchez/ideahub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "testuser-" + suffix,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, is_active, is_staff, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.IsActive, user.IsStaff, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedIdea creates an idea for the given author. Returns a filled domain.Idea.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, visibility domain.Visibility) domain.Idea {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	idea := domain.Idea{
		ID:         uuid.New(),
		AuthorID:   authorID,
		Text:       "seed idea " + uniqueSuffix(),
		Visibility: visibility,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ideas (id, author_id, text, visibility, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		idea.ID, idea.AuthorID, idea.Text, string(idea.Visibility), idea.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea insert idea: %v", err)
	}

	return idea
}

// SeedFollow creates a follow edge in the given status. Returns a filled domain.FollowEdge.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, followerID, followingID uuid.UUID, status domain.FollowStatus) domain.FollowEdge {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	edge := domain.FollowEdge{
		ID:          uuid.New(),
		FollowerID:  followerID,
		FollowingID: followingID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO follows (id, follower_id, following_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		edge.ID, edge.FollowerID, edge.FollowingID, string(edge.Status), edge.CreatedAt, edge.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow insert edge: %v", err)
	}

	return edge
}
