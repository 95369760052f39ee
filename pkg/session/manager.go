package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"blogapp/pkg/user"

	"github.com/alexedwards/scs/v2"
)

const (
	DefaultLifetime = 24 * time.Hour
	CookieName      = "session"
)

type Options struct {
	// Secure marks the cookie HTTPS-only.
	Secure   bool
	Lifetime time.Duration
	// Secret keys the tokens handed to the store.
	Secret string
}

type Manager struct {
	sm     *scs.SessionManager
	logger *slog.Logger
}

func NewManager(store scs.Store, opts Options, logger *slog.Logger) *Manager {
	sm := scs.New()
	sm.Store = NewKeyedStore(store, opts.Secret)
	sm.Lifetime = opts.Lifetime
	if sm.Lifetime <= 0 {
		sm.Lifetime = DefaultLifetime
	}
	sm.Cookie.Name = CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = opts.Secure
	sm.Cookie.Path = "/"

	m := &Manager{sm: sm, logger: logger}
	sm.ErrorFunc = m.serverError
	return m
}

func (m *Manager) serverError(w http.ResponseWriter, r *http.Request, err error) {
	m.logger.Error("session store failure", slog.String("path", r.URL.Path), slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// LoadAndSave loads the session for the request cookie and commits it
// before the response headers go out.
func (m *Manager) LoadAndSave(next http.Handler) http.Handler {
	return m.sm.LoadAndSave(next)
}

func (m *Manager) User(ctx context.Context) *user.User {
	u, ok := m.sm.Get(ctx, userKey).(user.User)
	if !ok {
		return nil
	}
	return &u
}

// SetUser signs the browser in. The token is renewed first so a token
// planted before login is worthless afterwards.
func (m *Manager) SetUser(ctx context.Context, u user.User) error {
	if err := m.sm.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session token: %w", err)
	}
	m.sm.Put(ctx, userKey, u)
	return nil
}

func (m *Manager) Flash(ctx context.Context, msg string) {
	m.sm.Put(ctx, flashKey, msg)
}

// PopFlash returns the pending message, if any, and removes it.
func (m *Manager) PopFlash(ctx context.Context) string {
	return m.sm.PopString(ctx, flashKey)
}

// Destroy drops the session from the store and expires the cookie.
func (m *Manager) Destroy(ctx context.Context) error {
	return m.sm.Destroy(ctx)
}
