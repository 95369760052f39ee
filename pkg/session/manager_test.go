package session_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapp/pkg/session"
	"blogapp/pkg/user"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	m := session.NewManager(memstore.New(), session.Options{Secret: "test-secret"}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	mux := http.NewServeMux()
	mux.HandleFunc("/flash", func(w http.ResponseWriter, r *http.Request) {
		m.Flash(r.Context(), "hello once")
	})
	mux.HandleFunc("/pop", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, m.PopFlash(r.Context()))
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.SetUser(r.Context(), user.User{ID: "u1", Email: "a@b.c"}))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		if u := m.User(r.Context()); u != nil {
			io.WriteString(w, u.Email)
		}
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.Destroy(r.Context()))
	})
	return m.LoadAndSave(mux)
}

func do(h http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestManager_FlashIsReadOnce(t *testing.T) {
	h := newTestServer(t)

	cookie := sessionCookie(do(h, "/flash", nil))
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	assert.Equal(t, "hello once", do(h, "/pop", cookie).Body.String())
	assert.Empty(t, do(h, "/pop", cookie).Body.String())
}

func TestManager_SetUserRenewsToken(t *testing.T) {
	h := newTestServer(t)

	before := sessionCookie(do(h, "/flash", nil))
	require.NotNil(t, before)

	after := sessionCookie(do(h, "/login", before))
	require.NotNil(t, after)
	assert.NotEqual(t, before.Value, after.Value)

	assert.Equal(t, "a@b.c", do(h, "/me", after).Body.String())
	assert.Empty(t, do(h, "/me", before).Body.String())
}

func TestManager_DestroyClearsCookie(t *testing.T) {
	h := newTestServer(t)

	cookie := sessionCookie(do(h, "/login", nil))
	require.NotNil(t, cookie)

	cleared := sessionCookie(do(h, "/logout", cookie))
	if assert.NotNil(t, cleared) {
		assert.Empty(t, cleared.Value)
		assert.Less(t, cleared.MaxAge, 0)
	}
	assert.Empty(t, do(h, "/me", cookie).Body.String())
}

func TestLocalsFrom(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, session.LocalsFrom(r.Context()))

	l := &session.Locals{Message: "hi"}
	ctx := session.WithLocals(r.Context(), l)
	assert.Same(t, l, session.LocalsFrom(ctx))
}
