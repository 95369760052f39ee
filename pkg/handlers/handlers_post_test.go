package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blogapp/pkg/handlers"
	"blogapp/pkg/post"
	"blogapp/pkg/post/mocks"
	"blogapp/pkg/user"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func resetMock(m *mocks.ServicePost) {
	m.ExpectedCalls = nil
	m.Calls = nil
}

func newPostHandler(t *testing.T) (*handlers.PostHandler, *mocks.ServicePost, *mockSessions) {
	svc := new(mocks.ServicePost)
	sess := new(mockSessions)
	return handlers.NewPostHandler(svc, sess, newPages(t), logger), svc, sess
}

func TestIndex(t *testing.T) {
	h, svc, _ := newPostHandler(t)

	t.Run("success", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("GetAll", mock.Anything).Return([]*post.Post{
			{ID: "2", Title: "Newest", Author: "bob", CreatedAt: time.Now()},
			{ID: "1", Title: "Oldest", Author: "Anonymous", CreatedAt: time.Now().Add(-time.Hour)},
		}, nil)
		w := httptest.NewRecorder()

		h.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "All Blog Posts")
		assert.Contains(t, w.Body.String(), "Newest")
		assert.Less(t, strings.Index(w.Body.String(), "Newest"), strings.Index(w.Body.String(), "Oldest"))
	})

	t.Run("store failure", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("GetAll", mock.Anything).Return(nil, errors.New("db_err"))
		w := httptest.NewRecorder()

		h.Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error fetching posts.")
	})
}

func TestCreate(t *testing.T) {
	h, svc, sess := newPostHandler(t)
	author := &user.User{ID: "u1", Email: "a@b.c"}
	form := url.Values{"title": {"Hi"}, "content": {"Body"}}

	t.Run("success", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("CreatePost", mock.Anything, post.Draft{Title: "Hi", Content: "Body", FallbackAuthor: "a@b.c"}).
			Return(&post.Post{ID: "9"}, nil)
		sess.On("Flash", "Post created successfully!").Return().Once()
		w := httptest.NewRecorder()

		h.Create(w, signedIn(formRequest("/posts", form), author))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		svc.AssertExpectations(t)
		sess.AssertExpectations(t)
	})

	t.Run("explicit author", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("CreatePost", mock.Anything, mock.MatchedBy(func(d post.Draft) bool {
			return d.Author == "Pen Name" && d.FallbackAuthor == "a@b.c"
		})).Return(&post.Post{ID: "10"}, nil)
		sess.On("Flash", "Post created successfully!").Return().Once()
		w := httptest.NewRecorder()

		h.Create(w, signedIn(formRequest("/posts", url.Values{"title": {"Hi"}, "content": {"Body"}, "author": {"Pen Name"}}), author))

		assert.Equal(t, http.StatusFound, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("CreatePost", mock.Anything, mock.AnythingOfType("post.Draft")).Return(nil, post.ErrMissingFields)
		w := httptest.NewRecorder()

		h.Create(w, signedIn(formRequest("/posts", url.Values{"title": {""}}), author))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Title and Content are required.")
	})

	t.Run("store failure", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("CreatePost", mock.Anything, mock.AnythingOfType("post.Draft")).Return(nil, errors.New("db_err"))
		w := httptest.NewRecorder()

		h.Create(w, signedIn(formRequest("/posts", form), author))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error creating post.")
	})
}

func TestShow(t *testing.T) {
	h, svc, _ := newPostHandler(t)

	show := func(id string) *httptest.ResponseRecorder {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/posts/"+id, nil), map[string]string{handlers.MuxVarPostID: id})
		w := httptest.NewRecorder()
		h.Show(w, r)
		return w
	}

	t.Run("success", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("GetByID", mock.Anything, "5").Return(&post.Post{ID: "5", Title: "Five", Content: "*hi*", Author: "bob"}, nil)

		w := show("5")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Five | Blog</title>")
		assert.Contains(t, w.Body.String(), "<em>hi</em>")
	})

	t.Run("not found", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("GetByID", mock.Anything, "404").Return(nil, post.ErrNotFound)

		w := show("404")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Post not found.")
	})

	t.Run("store failure", func(t *testing.T) {
		defer resetMock(svc)

		svc.On("GetByID", mock.Anything, "1").Return(nil, errors.New("db_err"))

		w := show("1")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error fetching post.")
	})
}

func TestNewForm(t *testing.T) {
	h, _, _ := newPostHandler(t)
	w := httptest.NewRecorder()

	h.New(w, signedIn(httptest.NewRequest(http.MethodGet, "/posts/new", nil), &user.User{Email: "a@b.c"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create New Post")
	assert.Contains(t, w.Body.String(), `action="/posts"`)
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.NotFound(newPages(t)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}
