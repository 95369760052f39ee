// Package render executes the page templates inside the shared layout.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"blogapp/pkg/session"
	"blogapp/pkg/user"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	PageIndex     = "posts/index"
	PageShow      = "posts/show"
	PageNew       = "posts/new"
	PageRegister  = "auth/register"
	PageLogin     = "auth/login"
	PageDashboard = "profile/dashboard"
	PageError     = "error"
)

var pages = []string{PageIndex, PageShow, PageNew, PageRegister, PageLogin, PageDashboard, PageError}

// View is what every template receives. User and Message are filled from
// the request's session locals when left empty.
type View struct {
	Title   string
	User    *user.User
	Message string
	// Error is the text shown by the error page.
	Error   string
	Content any
}

type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func New(fsys fs.FS, logger *slog.Logger) (*Renderer, error) {
	base, err := template.New("layout").Funcs(Funcs()).ParseFS(fsys, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), logger: logger}
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(fsys, "pages/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. Output is buffered, so a
// failing template still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, v View) {
	locals := session.LocalsFrom(req.Context())
	if v.User == nil {
		v.User = locals.User
	}
	if v.Message == "" {
		v.Message = locals.Message
	}

	t, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown page", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		r.logger.Error("template execution failed", slog.String("page", page), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("failed to write rendered page", slog.String("page", page), slog.Any("error", err))
	}
}

// Error renders the error page with msg as its text.
func (r *Renderer) Error(w http.ResponseWriter, req *http.Request, status int, title, msg string) {
	r.Render(w, req, status, PageError, View{Title: title, Error: msg})
}

var (
	md        = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitizer = bluemonday.UGCPolicy()
)

func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"ago":      Ago,
		"date":     Date,
	}
}

// Markdown converts post content to sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

func Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
