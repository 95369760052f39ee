package middleware

import (
	"context"
	"io/fs"
	"net/http"
	"strings"

	"blogapp/pkg/session"
	"blogapp/pkg/user"
)

const (
	MsgLoginRequired = "Please log in to access this page."
	StaticPrefix     = "/static/"
)

// SessionState is the part of the session manager the middleware uses.
type SessionState interface {
	User(ctx context.Context) *user.User
	Flash(ctx context.Context, msg string)
	PopFlash(ctx context.Context) string
}

// Locals snapshots the session into the request context. Any pending flash
// message is consumed here, so it is shown on exactly one response.
func Locals(state SessionState) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			locals := &session.Locals{
				User:    state.User(ctx),
				Message: state.PopFlash(ctx),
			}
			next.ServeHTTP(w, r.WithContext(session.WithLocals(ctx, locals)))
		})
	}
}

func RequireSession(state SessionState) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session.LocalsFrom(r.Context()).User == nil {
				state.Flash(r.Context(), MsgLoginRequired)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireNoSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.LocalsFrom(r.Context()).User != nil {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Static answers /static/ requests from fsys before any session work.
func Static(fsys fs.FS) func(http.Handler) http.Handler {
	files := http.StripPrefix(StaticPrefix, http.FileServer(http.FS(fsys)))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, StaticPrefix) && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
				files.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
