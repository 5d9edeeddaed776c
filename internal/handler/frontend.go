// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/risith/folio/internal/markdown"
	"github.com/risith/folio/internal/model"
	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
)

// homePostLimit is the number of recent posts shown on the home page.
const homePostLimit = 3

// FrontendHandler serves the public pages.
type FrontendHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

type homeData struct {
	Bio   template.HTML
	Posts []model.Post
}

// Home renders the landing page with the bio and recent posts.
// A missing or unreadable bio degrades to an empty section so the page
// still renders.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	var bio template.HTML
	profile, err := h.queries.GetProfile(r.Context(), model.ProfileID)
	switch {
	case err == nil:
		rendered, err := markdown.Render(profile.Bio)
		if err != nil {
			slog.Error("failed to render bio", "error", err)
		} else {
			bio = rendered
		}
	case errors.Is(err, sql.ErrNoRows):
		rendered, err := markdown.Render(model.DefaultBio)
		if err == nil {
			bio = rendered
		}
	default:
		slog.Error("failed to load profile", "error", err)
	}

	posts, err := h.queries.ListRecentPosts(r.Context(), homePostLimit)
	if err != nil {
		slog.Error("failed to list recent posts", "error", err)
		posts = nil
	}

	data := render.TemplateData{
		Title: "Home",
		Data:  homeData{Bio: bio, Posts: posts},
	}

	if err := h.renderer.Render(w, r, "frontend/home", data); err != nil {
		logAndInternalError(w, "rendering home page", "error", err)
	}
}

// Blog renders the list of published posts. A failed read degrades to the
// empty listing so the public page never errors out.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListPublishedPosts(r.Context())
	if err != nil {
		slog.Error("failed to list published posts", "error", err)
		posts = nil
	}

	data := render.TemplateData{
		Title: "Blog",
		Data:  struct{ Posts []model.Post }{Posts: posts},
	}

	if err := h.renderer.Render(w, r, "frontend/blog", data); err != nil {
		logAndInternalError(w, "rendering blog page", "error", err)
	}
}

type postPageData struct {
	Post    model.Post
	Content template.HTML
}

// Post renders a single published post by slug.
// Drafts and unknown slugs both return 404 so draft URLs stay unguessable.
func (h *FrontendHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.queries.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to load post", "error", err, "slug", slug)
		}
		h.renderer.RenderNotFound(w, r)
		return
	}

	if !post.Published {
		h.renderer.RenderNotFound(w, r)
		return
	}

	content, err := markdown.Render(post.Content)
	if err != nil {
		logAndInternalError(w, "failed to render post content", "error", err, "slug", slug)
		return
	}

	data := render.TemplateData{
		Title: post.Title,
		Data:  postPageData{Post: post, Content: content},
	}

	if err := h.renderer.Render(w, r, "frontend/post", data); err != nil {
		logAndInternalError(w, "rendering post page", "error", err)
	}
}

// Projects renders the list of published projects.
func (h *FrontendHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListPublishedProjects(r.Context())
	if err != nil {
		slog.Error("failed to list published projects", "error", err)
		projects = nil
	}

	data := render.TemplateData{
		Title: "Projects",
		Data:  struct{ Projects []model.Project }{Projects: projects},
	}

	if err := h.renderer.Render(w, r, "frontend/projects", data); err != nil {
		logAndInternalError(w, "rendering projects page", "error", err)
	}
}

// NotFound is the router's fallback handler.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.RenderNotFound(w, r)
}
