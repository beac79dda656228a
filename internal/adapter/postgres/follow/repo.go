// Package follow implements the FollowEdge repository using PostgreSQL.
package follow

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/osanchez/ideahub-backend/internal/adapter/postgres"
	"github.com/osanchez/ideahub-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var edgeColumns = []string{"id", "follower_id", "following_id", "status", "created_at", "updated_at"}

// Repo provides follow-edge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new follow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanEdge(row pgx.Row) (*domain.FollowEdge, error) {
	var (
		e      domain.FollowEdge
		status string
	)
	err := row.Scan(&e.ID, &e.FollowerID, &e.FollowingID, &status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Status = domain.FollowStatus(status)
	return &e, nil
}

// Create inserts a new edge. The unique (follower_id, following_id)
// constraint maps to domain.ErrAlreadyExists for any existing edge,
// whatever its status.
func (r *Repo) Create(ctx context.Context, e *domain.FollowEdge) (*domain.FollowEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("follows").
		Columns("id", "follower_id", "following_id", "status", "created_at", "updated_at").
		Values(e.ID, e.FollowerID, e.FollowingID, string(e.Status), e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING " + strings.Join(edgeColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", e.ID)
	}

	created, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "follow", e.ID)
	}
	return created, nil
}

// GetByID returns an edge by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FollowEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(edgeColumns...).
		From("follows").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", id)
	}

	e, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "follow", id)
	}
	return e, nil
}

// ResolvePending sets a pending edge to the given status. The status
// precondition is part of the statement, so a concurrent resolve cannot
// double-fire; a missing or already resolved edge returns
// domain.ErrNotFound.
func (r *Repo) ResolvePending(ctx context.Context, id uuid.UUID, status domain.FollowStatus) (*domain.FollowEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("follows").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "status": string(domain.FollowStatusPending)}).
		Suffix("RETURNING " + strings.Join(edgeColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", id)
	}

	e, err := scanEdge(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "follow", id)
	}
	return e, nil
}

// DeleteApproved removes the approved edge for the given pair. Returns
// domain.ErrNotFound when no approved edge exists.
func (r *Repo) DeleteApproved(ctx context.Context, followerID, followingID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("follows").
		Where(squirrel.Eq{
			"follower_id":  followerID,
			"following_id": followingID,
			"status":       string(domain.FollowStatusApproved),
		}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "follow", uuid.Nil)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "follow", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "follow", uuid.Nil)
	}
	return nil
}

// IsApprovedFollower reports whether follower has an approved edge
// toward following.
func (r *Repo) IsApprovedFollower(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("1").
		From("follows").
		Where(squirrel.Eq{
			"follower_id":  followerID,
			"following_id": followingID,
			"status":       string(domain.FollowStatusApproved),
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "follow", uuid.Nil)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "follow", uuid.Nil)
	}
	return exists, nil
}

// ListApprovedFollowerIDs returns the IDs of all users with an approved
// edge toward the given user.
func (r *Repo) ListApprovedFollowerIDs(ctx context.Context, followingID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("follower_id").
		From("follows").
		Where(squirrel.Eq{
			"following_id": followingID,
			"status":       string(domain.FollowStatusApproved),
		}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "follow", followingID)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}
	return ids, nil
}

// ListPendingReceived returns the pending requests addressed to the given
// user, joined with the requesting users, newest first.
func (r *Repo) ListPendingReceived(ctx context.Context, followingID uuid.UUID) ([]domain.FollowRequest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(
		"f.id", "f.created_at",
		"u.id", "u.email", "u.username", "u.is_active", "u.is_staff", "u.created_at", "u.updated_at",
	).
		From("follows f").
		Join("users u ON u.id = f.follower_id").
		Where(squirrel.Eq{
			"f.following_id": followingID,
			"f.status":       string(domain.FollowStatusPending),
		}).
		OrderBy("f.created_at DESC", "f.id DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}
	defer rows.Close()

	var requests []domain.FollowRequest
	for rows.Next() {
		var req domain.FollowRequest
		err := rows.Scan(
			&req.EdgeID, &req.CreatedAt,
			&req.Follower.ID, &req.Follower.Email, &req.Follower.Username,
			&req.Follower.IsActive, &req.Follower.IsStaff,
			&req.Follower.CreatedAt, &req.Follower.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(err, "follow", followingID)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "follow", followingID)
	}
	return requests, nil
}

// ListFollowing returns the users the given user follows with approved
// status, ordered by username.
func (r *Repo) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]domain.User, error) {
	return r.listJoined(ctx, "u.id = f.following_id", squirrel.Eq{
		"f.follower_id": followerID,
		"f.status":      string(domain.FollowStatusApproved),
	})
}

// ListFollowers returns the users with an approved edge toward the given
// user, ordered by username.
func (r *Repo) ListFollowers(ctx context.Context, followingID uuid.UUID) ([]domain.User, error) {
	return r.listJoined(ctx, "u.id = f.follower_id", squirrel.Eq{
		"f.following_id": followingID,
		"f.status":       string(domain.FollowStatusApproved),
	})
}

func (r *Repo) listJoined(ctx context.Context, joinOn string, where squirrel.Eq) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(
		"u.id", "u.email", "u.username", "u.is_active", "u.is_staff", "u.created_at", "u.updated_at",
	).
		From("follows f").
		Join("users u ON " + joinOn).
		Where(where).
		OrderBy("u.username ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "follow", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "follow", uuid.Nil)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "follow", uuid.Nil)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "follow", uuid.Nil)
	}
	return users, nil
}
