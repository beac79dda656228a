// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/osanchez/ideahub-backend/internal/adapter/postgres"
	"github.com/osanchez/ideahub-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var notificationColumns = []string{"id", "user_id", "idea_id", "message", "read", "created_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateBatch inserts all notifications in a single statement. A nil or
// empty batch is a no-op.
func (r *Repo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	insert := qb.Insert("notifications").
		Columns("id", "user_id", "idea_id", "message", "read", "created_at")
	for _, n := range ns {
		insert = insert.Values(n.ID, n.UserID, n.IdeaID, n.Message, n.Read, n.CreatedAt)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return postgres.MapError(err, "notification", uuid.Nil)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", uuid.Nil)
	}
	return nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}
	defer rows.Close()

	var ns []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.IdeaID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "notification", userID)
		}
		ns = append(ns, n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}
	return ns, nil
}

// MarkRead flags a notification as read. The user_id predicate keeps one
// user from touching another's notifications; a mismatch reads as
// domain.ErrNotFound.
func (r *Repo) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(notificationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "notification", notificationID)
	}

	var n domain.Notification
	err = q.QueryRow(ctx, sql, args...).Scan(&n.ID, &n.UserID, &n.IdeaID, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "notification", notificationID)
	}
	return &n, nil
}
