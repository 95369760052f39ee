package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogapp/pkg/render"
	"blogapp/pkg/session"
	"blogapp/pkg/user"
	"blogapp/web"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) SetUser(ctx context.Context, u user.User) error {
	return m.Called(u).Error(0)
}

func (m *mockSessions) Flash(ctx context.Context, msg string) {
	m.Called(msg)
}

func (m *mockSessions) Destroy(ctx context.Context) error {
	return m.Called().Error(0)
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newPages(t *testing.T) *render.Renderer {
	t.Helper()
	pages, err := render.New(web.Templates(), logger)
	require.NoError(t, err)
	return pages
}

func formRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func signedIn(r *http.Request, u *user.User) *http.Request {
	return r.WithContext(session.WithLocals(r.Context(), &session.Locals{User: u}))
}
