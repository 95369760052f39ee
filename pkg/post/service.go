package post

import (
	"context"
	"strings"
)

type ServicePost interface {
	GetAll(ctx context.Context) ([]*Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, draft Draft) (*Post, error)
}

// Draft is an unvalidated post submission.
type Draft struct {
	Title   string
	Content string
	// Author overrides the byline when non-empty.
	Author string
	// FallbackAuthor is used when Author is empty, usually the poster's email.
	FallbackAuthor string
}

type PostService struct {
	Repo Repository
}

func NewService(repo Repository) *PostService {
	return &PostService{Repo: repo}
}

func (s *PostService) GetAll(ctx context.Context) ([]*Post, error) {
	return s.Repo.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id string) (*Post, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, draft Draft) (*Post, error) {
	p := &Post{
		Title:   strings.TrimSpace(draft.Title),
		Content: draft.Content,
		Author:  authorOf(draft),
	}
	if p.Title == "" || strings.TrimSpace(p.Content) == "" {
		return nil, ErrMissingFields
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func authorOf(d Draft) string {
	if a := strings.TrimSpace(d.Author); a != "" {
		return a
	}
	if a := strings.TrimSpace(d.FallbackAuthor); a != "" {
		return a
	}
	return AnonymousAuthor
}
