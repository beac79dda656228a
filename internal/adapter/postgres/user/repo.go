// Package user implements the User repository using PostgreSQL.
package user

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

var userColumns = []string{"id", "email", "username", "is_active", "is_staff", "created_at", "updated_at"}

// Repo provides user and credential persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("users").
		Columns("id", "email", "username", "is_active", "is_staff", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Username, u.IsActive, u.IsStaff, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// List returns all users ordered by username.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// SearchByUsername returns users whose username contains the query,
// case-insensitively, ordered by username.
func (r *Repo) SearchByUsername(ctx context.Context, query string) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.ILike{"username": "%" + query + "%"}).
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.IsActive, &u.IsStaff, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "user", uuid.Nil)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Credential operations
// ---------------------------------------------------------------------------

// GetCredential returns the stored password hash for the given user.
func (r *Repo) GetCredential(ctx context.Context, userID uuid.UUID) (*domain.Credential, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("user_id", "password_hash", "updated_at").
		From("credentials").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "credential", userID)
	}

	var c domain.Credential
	err = q.QueryRow(ctx, sql, args...).Scan(&c.UserID, &c.PasswordHash, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "credential", userID)
	}
	return &c, nil
}

// SetCredential inserts or replaces the password hash for the given user.
func (r *Repo) SetCredential(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	sql, args, err := qb.Insert("credentials").
		Columns("user_id", "password_hash", "updated_at").
		Values(userID, passwordHash, now).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "credential", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "credential", userID)
	}
	return nil
}
