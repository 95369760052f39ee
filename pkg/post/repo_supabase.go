package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogapp/internal/supabase"

	"github.com/tidwall/gjson"
)

const (
	postsTable = "posts"
	// PostgREST answers 22P02 when an id does not parse as the column type.
	codeInvalidTextRepresentation = "22P02"
)

type SupabaseRepo struct {
	client *supabase.Client
}

func NewSupabaseRepo(client *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{client: client}
}

func (r *SupabaseRepo) List(ctx context.Context) ([]*Post, error) {
	rows, err := r.client.From(postsTable).Select("*").Order("created_at", false).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	return decodeRows(rows), nil
}

func (r *SupabaseRepo) GetByID(ctx context.Context, id string) (*Post, error) {
	rows, err := r.client.From(postsTable).Select("*").Eq("id", id).Limit(1).Execute(ctx)
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.Code == codeInvalidTextRepresentation {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch post: %w", err)
	}

	posts := decodeRows(rows)
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return posts[0], nil
}

func (r *SupabaseRepo) Create(ctx context.Context, p *Post) error {
	rows, err := r.client.Insert(ctx, postsTable, []map[string]string{{
		"title":   p.Title,
		"content": p.Content,
		"author":  p.Author,
	}})
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	stored := decodeRows(rows)
	if len(stored) == 0 {
		return errors.New("insert post: no row returned")
	}
	p.ID = stored[0].ID
	p.CreatedAt = stored[0].CreatedAt
	return nil
}

func (r *SupabaseRepo) Ping(ctx context.Context) error {
	if _, err := r.client.From(postsTable).Select("id").Limit(1).Execute(ctx); err != nil {
		return fmt.Errorf("ping posts table: %w", err)
	}
	return nil
}

func decodeRows(rows gjson.Result) []*Post {
	var posts []*Post
	rows.ForEach(func(_, row gjson.Result) bool {
		posts = append(posts, decodeRow(row))
		return true
	})
	return posts
}

// decodeRow accepts numeric or uuid ids.
func decodeRow(row gjson.Result) *Post {
	p := &Post{
		ID:      row.Get("id").String(),
		Title:   row.Get("title").String(),
		Content: row.Get("content").String(),
		Author:  row.Get("author").String(),
	}
	if ts := row.Get("created_at").String(); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			p.CreatedAt = t
		} else if t, err := time.Parse("2006-01-02T15:04:05.999999", ts); err == nil {
			p.CreatedAt = t.UTC()
		}
	}
	return p
}
