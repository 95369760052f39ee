package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogapp/pkg/render"
	"blogapp/pkg/session"
	"blogapp/pkg/user"
)

const (
	msgCredentialsRequired = "Email and password are required."
	msgRegistered          = "Registration successful! You are now logged in."
	msgConfirmEmail        = "Registration successful! Please check your email to confirm your account."
	msgRegisterFailed      = "Registration failed: "
	msgRegisterUnexpected  = "An unexpected error occurred during registration."
	msgLoggedIn            = "Logged in successfully!"
	msgLoginFailed         = "Login failed: "
	msgLoginUnexpected     = "An unexpected error occurred during login."
)

type UserHandler struct {
	Service  user.ServiceInterface
	Sessions Sessions
	Pages    Pages
	Logger   *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, sessions Sessions, pages Pages, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service:  service,
		Sessions: sessions,
		Pages:    pages,
		Logger:   logger,
	}
}

func (h *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, http.StatusOK, render.PageRegister, render.View{Title: "Register"})
}

func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, http.StatusOK, render.PageLogin, render.View{Title: "Login"})
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	u, err := h.Service.Register(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.authFailed(w, r, err, "/register", msgRegisterFailed, msgRegisterUnexpected)
		return
	}

	// no identity means the provider wants the address confirmed first
	if u == nil {
		flashRedirect(w, r, h.Sessions, msgConfirmEmail, "/login")
		return
	}

	if err := h.Sessions.SetUser(r.Context(), *u); err != nil {
		h.Logger.Error("register", "error", err)
		flashRedirect(w, r, h.Sessions, msgRegisterUnexpected, "/register")
		return
	}
	h.Logger.Info("register", "user", u.ID)
	flashRedirect(w, r, h.Sessions, msgRegistered, "/dashboard")
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	u, err := h.Service.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.authFailed(w, r, err, "/login", msgLoginFailed, msgLoginUnexpected)
		return
	}

	if err := h.Sessions.SetUser(r.Context(), *u); err != nil {
		h.Logger.Error("login", "error", err)
		flashRedirect(w, r, h.Sessions, msgLoginUnexpected, "/login")
		return
	}
	h.Logger.Info("login", "user", u.ID)
	flashRedirect(w, r, h.Sessions, msgLoggedIn, "/dashboard")
}

func (h *UserHandler) authFailed(w http.ResponseWriter, r *http.Request, err error, back, failed, unexpected string) {
	var perr *user.ProviderError
	switch {
	case errors.Is(err, user.ErrMissingCredentials):
		flashRedirect(w, r, h.Sessions, msgCredentialsRequired, back)
	case errors.As(err, &perr):
		flashRedirect(w, r, h.Sessions, failed+perr.Message, back)
	default:
		h.Logger.Error("auth", "path", r.URL.Path, "error", err)
		flashRedirect(w, r, h.Sessions, unexpected, back)
	}
}

// Logout always ends the local session, even when the provider refuses
// to revoke the remote one.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if u := session.LocalsFrom(r.Context()).User; u != nil {
		if err := h.Service.Logout(r.Context(), u.ID); err != nil {
			h.Logger.Error("logout", "user", u.ID, "error", err)
		}
	}

	if err := h.Sessions.Destroy(r.Context()); err != nil {
		h.Logger.Error("destroy session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, http.StatusOK, render.PageDashboard, render.View{
		Title: "Dashboard",
		User:  session.LocalsFrom(r.Context()).User,
	})
}
