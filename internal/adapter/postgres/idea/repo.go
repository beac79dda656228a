// Package idea implements the Idea repository using PostgreSQL.
package idea

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/osanchez/ideahub-backend/internal/adapter/postgres"
	"github.com/osanchez/ideahub-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ideaColumns = []string{"id", "author_id", "text", "visibility", "created_at"}

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var (
		i          domain.Idea
		visibility string
	)
	err := row.Scan(&i.ID, &i.AuthorID, &i.Text, &visibility, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	i.Visibility = domain.Visibility(visibility)
	return &i, nil
}

// Create inserts a new idea.
func (r *Repo) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("ideas").
		Columns("id", "author_id", "text", "visibility", "created_at").
		Values(i.ID, i.AuthorID, i.Text, string(i.Visibility), i.CreatedAt).
		Suffix("RETURNING " + strings.Join(ideaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", i.ID)
	}

	created, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "idea", i.ID)
	}
	return created, nil
}

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(ideaColumns...).
		From("ideas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}

	i, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return i, nil
}

// UpdateVisibility changes the visibility of an idea. created_at and text
// never change after creation.
func (r *Repo) UpdateVisibility(ctx context.Context, id uuid.UUID, v domain.Visibility) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("ideas").
		Set("visibility", string(v)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(ideaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}

	i, err := scanIdea(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return i, nil
}

// Delete removes an idea. Returns domain.ErrNotFound when it does not
// exist. Notifications referencing the idea cascade at the schema level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("ideas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "idea", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "idea", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "idea", id)
	}
	return nil
}

// ListByAuthor returns the author's ideas, optionally filtered to the
// given visibilities, newest first.
func (r *Repo) ListByAuthor(ctx context.Context, authorID uuid.UUID, visibilities ...domain.Visibility) ([]domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := qb.Select(ideaColumns...).
		From("ideas").
		Where(squirrel.Eq{"author_id": authorID}).
		OrderBy("created_at DESC", "id DESC")

	if len(visibilities) > 0 {
		vs := make([]string, len(visibilities))
		for i, v := range visibilities {
			vs[i] = string(v)
		}
		query = query.Where(squirrel.Eq{"visibility": vs})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", authorID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idea", authorID)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

// ListTimeline returns the viewer's own ideas plus the public and
// protected ideas of the authors the viewer follows with approved status,
// newest first with id as the tie-break.
func (r *Repo) ListTimeline(ctx context.Context, viewerID uuid.UUID) ([]domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	// Built with question placeholders so the outer builder can renumber
	// them when it applies the dollar format.
	followed := squirrel.Select("following_id").
		From("follows").
		Where(squirrel.Eq{
			"follower_id": viewerID,
			"status":      string(domain.FollowStatusApproved),
		})
	followedSQL, followedArgs, err := followed.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", viewerID)
	}

	sql, args, err := qb.Select(ideaColumns...).
		From("ideas").
		Where(squirrel.Or{
			squirrel.Eq{"author_id": viewerID},
			squirrel.And{
				squirrel.Expr("author_id IN ("+followedSQL+")", followedArgs...),
				squirrel.Eq{"visibility": []string{
					string(domain.VisibilityPublic),
					string(domain.VisibilityProtected),
				}},
			},
		}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "idea", viewerID)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idea", viewerID)
	}
	defer rows.Close()

	return collectIdeas(rows)
}

func collectIdeas(rows pgx.Rows) ([]domain.Idea, error) {
	var ideas []domain.Idea
	for rows.Next() {
		var (
			i          domain.Idea
			visibility string
		)
		if err := rows.Scan(&i.ID, &i.AuthorID, &i.Text, &visibility, &i.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "idea", uuid.Nil)
		}
		i.Visibility = domain.Visibility(visibility)
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "idea", uuid.Nil)
	}
	return ideas, nil
}
