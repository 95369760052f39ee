package routing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"blogapp/pkg/handlers"
	"blogapp/pkg/middleware"
	"blogapp/pkg/post"
	"blogapp/pkg/render"
	"blogapp/pkg/session"
	"blogapp/pkg/user"
)

type Deps struct {
	Posts    post.ServicePost
	Users    user.ServiceInterface
	Sessions *session.Manager
	Pages    *render.Renderer
	Static   fs.FS
	Logger   *slog.Logger
}

// NewRouter builds the full handler chain: recovery, request log, static
// files, session load/save, session locals, then the routes.
func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()
	InitRoutes(r, d)

	notFound := handlers.NotFound(d.Pages)
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	var h http.Handler = r
	h = middleware.Locals(d.Sessions)(h)
	h = d.Sessions.LoadAndSave(h)
	h = middleware.Static(d.Static)(h)
	h = middleware.Logging(d.Logger)(h)
	h = middleware.Panic(d.Logger, d.Pages)(h)
	return h
}

func InitRoutes(r *mux.Router, d Deps) {
	userHandler := handlers.NewUserHandler(d.Users, d.Sessions, d.Pages, d.Logger)
	postHandler := handlers.NewPostHandler(d.Posts, d.Sessions, d.Pages, d.Logger)

	requireSession := middleware.RequireSession(d.Sessions)
	guestOnly := middleware.RequireNoSession

	r.HandleFunc("/", postHandler.Index).Methods("GET").Name("index")

	/* auth routers */
	r.Handle("/register", guestOnly(http.HandlerFunc(userHandler.RegisterForm))).Methods("GET")
	r.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	r.Handle("/login", guestOnly(http.HandlerFunc(userHandler.LoginForm))).Methods("GET")
	r.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	r.HandleFunc("/logout", userHandler.Logout).Methods("GET").Name("logout")
	r.Handle("/dashboard", requireSession(http.HandlerFunc(userHandler.Dashboard))).Methods("GET").Name("dashboard")

	/* posts routers */
	r.Handle("/posts/new", requireSession(http.HandlerFunc(postHandler.New))).Methods("GET")
	r.Handle("/posts", requireSession(http.HandlerFunc(postHandler.Create))).Methods("POST")
	r.HandleFunc("/posts/{"+handlers.MuxVarPostID+"}", postHandler.Show).Methods("GET").Name("post")
}

// StartServer serves until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func StartServer(ctx context.Context, addr string, h http.Handler, logger *slog.Logger, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", slog.String("addr", "http://localhost"+addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
