// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site,
// the admin panel, and authentication.
package handler

import (
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/risith/folio/internal/model"
	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
)

// dashboardEventLimit is the number of recent events shown on the dashboard.
const dashboardEventLimit = 10

// AdminHandler handles the admin dashboard.
type AdminHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *AdminHandler {
	return &AdminHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

type dashboardData struct {
	PostCount          int64
	PublishedPostCount int64
	ProjectCount       int64
	Events             []model.Event
}

// Dashboard renders the admin dashboard with content counts and recent events.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postCount, err := h.queries.CountPosts(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count posts", "error", err)
		return
	}

	publishedCount, err := h.queries.CountPublishedPosts(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count published posts", "error", err)
		return
	}

	projectCount, err := h.queries.CountProjects(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count projects", "error", err)
		return
	}

	events, err := h.queries.ListRecentEvents(ctx, dashboardEventLimit)
	if err != nil {
		logAndInternalError(w, "failed to list recent events", "error", err)
		return
	}

	data := render.TemplateData{
		Title:     "Dashboard",
		CSRFToken: h.sessionManager.Token(ctx),
		Data: dashboardData{
			PostCount:          postCount,
			PublishedPostCount: publishedCount,
			ProjectCount:       projectCount,
			Events:             events,
		},
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", data); err != nil {
		logAndInternalError(w, "rendering dashboard", "error", err)
	}
}
