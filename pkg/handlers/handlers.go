package handlers

import (
	"context"
	"net/http"

	"blogapp/pkg/render"
	"blogapp/pkg/user"
)

// Pages renders HTML responses.
type Pages interface {
	Render(w http.ResponseWriter, r *http.Request, status int, page string, v render.View)
	Error(w http.ResponseWriter, r *http.Request, status int, title, msg string)
}

// Sessions is the write side of the session store.
type Sessions interface {
	SetUser(ctx context.Context, u user.User) error
	Flash(ctx context.Context, msg string)
	Destroy(ctx context.Context) error
}

func NotFound(pages Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages.Error(w, r, http.StatusNotFound, "404", "Page Not Found")
	}
}

// flashRedirect stores msg for the next request and sends a 302 to url.
func flashRedirect(w http.ResponseWriter, r *http.Request, sessions Sessions, msg, url string) {
	sessions.Flash(r.Context(), msg)
	http.Redirect(w, r, url, http.StatusFound)
}
