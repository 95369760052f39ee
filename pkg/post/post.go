package post

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("post not found")
	ErrMissingFields = errors.New("title and content are required")
)

const AnonymousAuthor = "Anonymous"

type Post struct {
	ID        string    `json:"id" bson:"-"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Repository is the table store holding posts. Posts are never updated or
// deleted through it.
type Repository interface {
	// List returns every post, newest first.
	List(ctx context.Context) ([]*Post, error)
	// GetByID returns ErrNotFound for unknown or malformed ids.
	GetByID(ctx context.Context, id string) (*Post, error)
	// Create stores p and fills in its ID and CreatedAt.
	Create(ctx context.Context, p *Post) error
	Ping(ctx context.Context) error
}
