package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogapp/pkg/post"
	"blogapp/pkg/render"
	"blogapp/pkg/session"

	"github.com/gorilla/mux"
)

const (
	MuxVarPostID = "id"

	msgFetchPosts    = "Error fetching posts."
	msgFetchPost     = "Error fetching post."
	msgPostNotFound  = "Post not found."
	msgFieldsMissing = "Title and Content are required."
	msgCreatePost    = "Error creating post."
	msgPostCreated   = "Post created successfully!"
)

type PostHandler struct {
	Service  post.ServicePost
	Sessions Sessions
	Pages    Pages
	Logger   *slog.Logger
}

func NewPostHandler(service post.ServicePost, sessions Sessions, pages Pages, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		Service:  service,
		Sessions: sessions,
		Pages:    pages,
		Logger:   logger,
	}
}

func (h *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.Logger.Error("fetch posts", "error", err)
		h.Pages.Error(w, r, http.StatusInternalServerError, "Error", msgFetchPosts)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, render.PageIndex, render.View{Title: "All Blog Posts", Content: posts})
}

func (h *PostHandler) New(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, http.StatusOK, render.PageNew, render.View{Title: "Create New Post"})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft := post.Draft{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
		Author:  r.PostFormValue("author"),
	}
	if u := session.LocalsFrom(r.Context()).User; u != nil {
		draft.FallbackAuthor = u.Email
	}

	p, err := h.Service.CreatePost(r.Context(), draft)
	if errors.Is(err, post.ErrMissingFields) {
		h.Pages.Error(w, r, http.StatusBadRequest, "Error", msgFieldsMissing)
		return
	}
	if err != nil {
		h.Logger.Error("create post", "error", err)
		h.Pages.Error(w, r, http.StatusInternalServerError, "Error", msgCreatePost)
		return
	}

	h.Logger.Info("new post created", "post", p.ID)
	flashRedirect(w, r, h.Sessions, msgPostCreated, "/")
}

func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.GetByID(r.Context(), mux.Vars(r)[MuxVarPostID])
	if errors.Is(err, post.ErrNotFound) {
		h.Pages.Error(w, r, http.StatusNotFound, "Error", msgPostNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("fetch post", "error", err)
		h.Pages.Error(w, r, http.StatusInternalServerError, "Error", msgFetchPost)
		return
	}
	h.Pages.Render(w, r, http.StatusOK, render.PageShow, render.View{Title: p.Title, Content: p})
}
