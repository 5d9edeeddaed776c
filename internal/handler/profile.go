// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/risith/folio/internal/model"
	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
)

// ProfileHandler handles the admin bio editor.
type ProfileHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *ProfileHandler {
	return &ProfileHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

// EditForm renders the profile bio form. A missing profile row is shown
// with the default bio rather than treated as an error.
func (h *ProfileHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	profile, err := h.queries.GetProfile(r.Context(), model.ProfileID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logAndInternalError(w, "failed to load profile", "error", err)
			return
		}
		profile = model.Profile{
			ID:        model.ProfileID,
			Bio:       model.DefaultBio,
			UpdatedAt: time.Now(),
		}
	}

	data := render.TemplateData{
		Title:     "Profile",
		CSRFToken: h.sessionManager.Token(r.Context()),
		Data:      struct{ Profile model.Profile }{Profile: profile},
	}

	if err := h.renderer.Render(w, r, "admin/profile_form", data); err != nil {
		logAndInternalError(w, "rendering profile form", "error", err)
	}
}

// Update handles the bio form submission.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminProfile) {
		return
	}

	bio := r.FormValue("bio")

	if _, err := h.queries.UpdateProfileBio(r.Context(), bio); err != nil {
		slog.Error("failed to update profile bio", "error", err)
		flashError(w, r, h.renderer, redirectAdminProfile, "Error saving profile")
		return
	}

	slog.Info("profile bio updated")
	flashSuccess(w, r, h.renderer, redirectAdminProfile, "Profile saved")
}
