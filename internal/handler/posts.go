// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/risith/folio/internal/model"
	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
	"github.com/risith/folio/internal/util"
)

// PostsHandler handles admin post management.
type PostsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewPostsHandler creates a new PostsHandler.
func NewPostsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *PostsHandler {
	return &PostsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

type postFormData struct {
	Post  model.Post
	IsNew bool
}

// List renders the post list with drafts included.
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListAllPosts(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts", "error", err)
		return
	}

	data := render.TemplateData{
		Title:     "Posts",
		CSRFToken: h.sessionManager.Token(r.Context()),
		Data:      struct{ Posts []model.Post }{Posts: posts},
	}

	if err := h.renderer.Render(w, r, "admin/posts_list", data); err != nil {
		logAndInternalError(w, "rendering post list", "error", err)
	}
}

// NewForm renders the post creation form.
func (h *PostsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, postFormData{
		Post: model.Post{
			ReadTime:  model.DefaultReadTime,
			Author:    model.DefaultAuthor,
			Published: true,
		},
		IsNew: true,
	})
}

// Create handles the post creation form submission.
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminPostsNew) {
		return
	}

	form := h.postFromForm(r, 0)
	if form.Title == "" {
		h.renderer.SetFlash(r, "Title is required", "error")
		h.renderForm(w, r, postFormData{Post: form, IsNew: true})
		return
	}

	slug := util.Slugify(form.Title)
	exists, err := h.queries.PostSlugExists(r.Context(), slug)
	if err != nil {
		logAndInternalError(w, "failed to check post slug", "error", err)
		return
	}
	if exists {
		h.renderer.SetFlash(r, "A post with this title already exists", "error")
		h.renderForm(w, r, postFormData{Post: form, IsNew: true})
		return
	}

	now := time.Now()
	post, err := h.queries.CreatePost(r.Context(), store.CreatePostParams{
		Title:     form.Title,
		Slug:      slug,
		Excerpt:   form.Excerpt,
		Content:   form.Content,
		ReadTime:  form.ReadTime,
		Author:    form.Author,
		Published: form.Published,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create post", "error", err, "slug", slug)
		flashError(w, r, h.renderer, redirectAdminPostsNew, "Error creating post")
		return
	}

	slog.Info("post created", "post_id", post.ID, "slug", post.Slug)
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post created")
}

// EditForm renders the post edit form.
func (h *PostsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	post, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminPosts, "post", id,
		func(id int64) (model.Post, error) { return h.queries.GetPostByID(r.Context(), id) })
	if !ok {
		return
	}

	h.renderForm(w, r, postFormData{Post: post})
}

// Update handles the post edit form submission.
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminPostsID+"/edit", id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	form := h.postFromForm(r, id)
	if form.Title == "" {
		h.renderer.SetFlash(r, "Title is required", "error")
		h.renderForm(w, r, postFormData{Post: form})
		return
	}

	// Slug follows the title so URLs stay consistent with content.
	slug := util.Slugify(form.Title)
	exists, err := h.queries.PostSlugExistsExcept(r.Context(), store.PostSlugExistsExceptParams{
		Slug: slug,
		ID:   id,
	})
	if err != nil {
		logAndInternalError(w, "failed to check post slug", "error", err)
		return
	}
	if exists {
		h.renderer.SetFlash(r, "A post with this title already exists", "error")
		h.renderForm(w, r, postFormData{Post: form})
		return
	}

	post, err := h.queries.UpdatePost(r.Context(), store.UpdatePostParams{
		ID:        id,
		Title:     form.Title,
		Slug:      slug,
		Excerpt:   form.Excerpt,
		Content:   form.Content,
		ReadTime:  form.ReadTime,
		Author:    form.Author,
		Published: form.Published,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to update post", "error", err, "post_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating post")
		return
	}

	slog.Info("post updated", "post_id", post.ID, "slug", post.Slug)
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post updated")
}

// Delete handles post deletion.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeletePost(r.Context(), id); err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", id)
		flashError(w, r, h.renderer, redirectAdminPosts, "Error deleting post")
		return
	}

	slog.Info("post deleted", "post_id", id)
	flashSuccess(w, r, h.renderer, redirectAdminPosts, "Post deleted")
}

// postID extracts and validates the post ID from the URL.
func (h *PostsHandler) postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		flashError(w, r, h.renderer, redirectAdminPosts, "Invalid post ID")
		return 0, false
	}
	return id, true
}

// postFromForm builds a Post from submitted form values, filling in the
// read time and author defaults when left blank.
func (h *PostsHandler) postFromForm(r *http.Request, id int64) model.Post {
	post := model.Post{
		ID:        id,
		Title:     r.FormValue("title"),
		Excerpt:   r.FormValue("excerpt"),
		Content:   r.FormValue("content"),
		ReadTime:  r.FormValue("read_time"),
		Author:    r.FormValue("author"),
		Published: r.FormValue("published") == "on",
	}
	if post.ReadTime == "" {
		post.ReadTime = model.DefaultReadTime
	}
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	return post
}

// renderForm renders the post create/edit form.
func (h *PostsHandler) renderForm(w http.ResponseWriter, r *http.Request, form postFormData) {
	title := "Edit post"
	if form.IsNew {
		title = "New post"
	}

	data := render.TemplateData{
		Title:     title,
		CSRFToken: h.sessionManager.Token(r.Context()),
		Data:      form,
	}

	if err := h.renderer.Render(w, r, "admin/posts_form", data); err != nil {
		logAndInternalError(w, "rendering post form", "error", err)
	}
}
