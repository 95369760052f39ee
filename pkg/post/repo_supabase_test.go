package post_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapp/internal/supabase"
	"blogapp/pkg/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupabaseRepo(t *testing.T, h http.HandlerFunc) *post.SupabaseRepo {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := supabase.New(supabase.Config{URL: srv.URL, ServiceKey: "service-key"})
	require.NoError(t, err)
	return post.NewSupabaseRepo(c)
}

func TestSupabaseRepo_List(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/posts", r.URL.Path)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		io.WriteString(w, `[
			{"id":2,"title":"b","content":"x","author":"bob","created_at":"2024-05-02T10:00:00.123456+00:00"},
			{"id":1,"title":"a","content":"y","author":"Anonymous","created_at":"2024-05-01T10:00:00"}
		]`)
	})

	posts, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "2", posts[0].ID)
	assert.Equal(t, "bob", posts[0].Author)
	assert.Equal(t, 2024, posts[0].CreatedAt.Year())
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), posts[1].CreatedAt)
}

func TestSupabaseRepo_ListError(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"boom"}`)
	})

	posts, err := repo.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, posts)
}

func TestSupabaseRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.5", r.URL.Query().Get("id"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			io.WriteString(w, `[{"id":5,"title":"t","content":"c","author":"a"}]`)
		})

		p, err := repo.GetByID(context.Background(), "5")

		require.NoError(t, err)
		assert.Equal(t, "5", p.ID)
		assert.Equal(t, "t", p.Title)
	})

	t.Run("empty result", func(t *testing.T) {
		repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[]`)
		})

		_, err := repo.GetByID(context.Background(), "99")

		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"code":"22P02","message":"invalid input syntax for type bigint: \"abc\""}`)
		})

		_, err := repo.GetByID(context.Background(), "abc")

		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("backend error", func(t *testing.T) {
		repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := repo.GetByID(context.Background(), "1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, post.ErrNotFound)
	})
}

func TestSupabaseRepo_Create(t *testing.T) {
	repo := newSupabaseRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[{"title":"t","content":"c","author":"a"}]`, string(body))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `[{"id":10,"title":"t","content":"c","author":"a","created_at":"2024-05-03T00:00:00Z"}]`)
	})

	p := &post.Post{Title: "t", Content: "c", Author: "a"}
	err := repo.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, "10", p.ID)
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), p.CreatedAt.UTC())
}
