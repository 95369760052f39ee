package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PgxPool is the subset of *pgxpool.Pool the repository needs.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresRepo reads the posts table directly, e.g. through the Supabase
// database connection string.
type PostgresRepo struct {
	pool PgxPool
}

func NewPostgresRepo(pool PgxPool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

const selectPosts = `SELECT id::text, title, content, author, created_at FROM posts`

func (r *PostgresRepo) List(ctx context.Context) ([]*Post, error) {
	rows, err := r.pool.Query(ctx, selectPosts+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Post, error) {
		var p Post
		err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt)
		return &p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	return posts, nil
}

// GetByID compares on the text form of id so malformed ids are simply absent.
func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := r.pool.QueryRow(ctx, selectPosts+` WHERE id::text = $1 LIMIT 1`, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}
	return &p, nil
}

func (r *PostgresRepo) Create(ctx context.Context, p *Post) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, content, author) VALUES ($1, $2, $3) RETURNING id::text, created_at`,
		p.Title, p.Content, p.Author,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
