package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// ErrorPage renders a user-facing error page.
type ErrorPage interface {
	Error(w http.ResponseWriter, r *http.Request, status int, title, msg string)
}

func Panic(logger *slog.Logger, page ErrorPage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("panic", err),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					page.Error(w, r, http.StatusInternalServerError, "Error", "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
