// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/risith/folio/internal/model"
	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
	"github.com/risith/folio/internal/util"
)

// ProjectsHandler handles admin project management.
type ProjectsHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *ProjectsHandler {
	return &ProjectsHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
	}
}

type projectFormData struct {
	Project    model.Project
	IsNew      bool
	Statuses   []string
	TechJoined string
}

// List renders the project list with drafts included.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListAllProjects(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list projects", "error", err)
		return
	}

	data := render.TemplateData{
		Title:     "Projects",
		CSRFToken: h.sessionManager.Token(r.Context()),
		Data:      struct{ Projects []model.Project }{Projects: projects},
	}

	if err := h.renderer.Render(w, r, "admin/projects_list", data); err != nil {
		logAndInternalError(w, "rendering project list", "error", err)
	}
}

// NewForm renders the project creation form.
func (h *ProjectsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, projectFormData{
		Project: model.Project{
			Status:    model.ProjectStatusInProgress,
			Author:    model.DefaultAuthor,
			Published: true,
		},
		IsNew: true,
	})
}

// Create handles the project creation form submission.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminProjectsNew) {
		return
	}

	form := h.projectFromForm(r, 0)
	if form.Title == "" {
		h.renderer.SetFlash(r, "Title is required", "error")
		h.renderForm(w, r, projectFormData{Project: form, IsNew: true})
		return
	}
	if !model.IsValidProjectStatus(form.Status) {
		h.renderer.SetFlash(r, "Invalid project status", "error")
		h.renderForm(w, r, projectFormData{Project: form, IsNew: true})
		return
	}

	slug := util.Slugify(form.Title)
	exists, err := h.queries.ProjectSlugExists(r.Context(), slug)
	if err != nil {
		logAndInternalError(w, "failed to check project slug", "error", err)
		return
	}
	if exists {
		h.renderer.SetFlash(r, "A project with this title already exists", "error")
		h.renderForm(w, r, projectFormData{Project: form, IsNew: true})
		return
	}

	now := time.Now()
	project, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:       form.Title,
		Slug:        slug,
		Description: form.Description,
		Tech:        form.Tech,
		Status:      form.Status,
		GithubURL:   form.GithubURL,
		LiveURL:     form.LiveURL,
		ImageURL:    form.ImageURL,
		Author:      form.Author,
		Published:   form.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.Error("failed to create project", "error", err, "slug", slug)
		flashError(w, r, h.renderer, redirectAdminProjectsNew, "Error creating project")
		return
	}

	slog.Info("project created", "project_id", project.ID, "slug", project.Slug)
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project created")
}

// EditForm renders the project edit form.
func (h *ProjectsHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.projectID(w, r)
	if !ok {
		return
	}

	project, ok := requireEntityWithRedirect(w, r, h.renderer, redirectAdminProjects, "project", id,
		func(id int64) (model.Project, error) { return h.queries.GetProjectByID(r.Context(), id) })
	if !ok {
		return
	}

	h.renderForm(w, r, projectFormData{Project: project})
}

// Update handles the project edit form submission.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.projectID(w, r)
	if !ok {
		return
	}

	editURL := fmt.Sprintf(redirectAdminProjectsID+"/edit", id)
	if !parseFormOrRedirect(w, r, h.renderer, editURL) {
		return
	}

	form := h.projectFromForm(r, id)
	if form.Title == "" {
		h.renderer.SetFlash(r, "Title is required", "error")
		h.renderForm(w, r, projectFormData{Project: form})
		return
	}
	if !model.IsValidProjectStatus(form.Status) {
		h.renderer.SetFlash(r, "Invalid project status", "error")
		h.renderForm(w, r, projectFormData{Project: form})
		return
	}

	slug := util.Slugify(form.Title)
	exists, err := h.queries.ProjectSlugExistsExcept(r.Context(), store.ProjectSlugExistsExceptParams{
		Slug: slug,
		ID:   id,
	})
	if err != nil {
		logAndInternalError(w, "failed to check project slug", "error", err)
		return
	}
	if exists {
		h.renderer.SetFlash(r, "A project with this title already exists", "error")
		h.renderForm(w, r, projectFormData{Project: form})
		return
	}

	project, err := h.queries.UpdateProject(r.Context(), store.UpdateProjectParams{
		ID:          id,
		Title:       form.Title,
		Slug:        slug,
		Description: form.Description,
		Tech:        form.Tech,
		Status:      form.Status,
		GithubURL:   form.GithubURL,
		LiveURL:     form.LiveURL,
		ImageURL:    form.ImageURL,
		Author:      form.Author,
		Published:   form.Published,
		UpdatedAt:   time.Now(),
	})
	if err != nil {
		slog.Error("failed to update project", "error", err, "project_id", id)
		flashError(w, r, h.renderer, editURL, "Error updating project")
		return
	}

	slog.Info("project updated", "project_id", project.ID, "slug", project.Slug)
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project updated")
}

// Delete handles project deletion.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.projectID(w, r)
	if !ok {
		return
	}

	if err := h.queries.DeleteProject(r.Context(), id); err != nil {
		slog.Error("failed to delete project", "error", err, "project_id", id)
		flashError(w, r, h.renderer, redirectAdminProjects, "Error deleting project")
		return
	}

	slog.Info("project deleted", "project_id", id)
	flashSuccess(w, r, h.renderer, redirectAdminProjects, "Project deleted")
}

// projectID extracts and validates the project ID from the URL.
func (h *ProjectsHandler) projectID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		flashError(w, r, h.renderer, redirectAdminProjects, "Invalid project ID")
		return 0, false
	}
	return id, true
}

// projectFromForm builds a Project from submitted form values. Tech is a
// comma-separated list in a single input.
func (h *ProjectsHandler) projectFromForm(r *http.Request, id int64) model.Project {
	project := model.Project{
		ID:          id,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Tech:        model.ParseTech(r.FormValue("tech")),
		Status:      r.FormValue("status"),
		GithubURL:   r.FormValue("github_url"),
		LiveURL:     r.FormValue("live_url"),
		ImageURL:    r.FormValue("image_url"),
		Author:      r.FormValue("author"),
		Published:   r.FormValue("published") == "on",
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusInProgress
	}
	if project.Author == "" {
		project.Author = model.DefaultAuthor
	}
	return project
}

// renderForm renders the project create/edit form.
func (h *ProjectsHandler) renderForm(w http.ResponseWriter, r *http.Request, form projectFormData) {
	form.Statuses = model.ValidProjectStatuses
	form.TechJoined = strings.Join(form.Project.Tech, ", ")

	title := "Edit project"
	if form.IsNew {
		title = "New project"
	}

	data := render.TemplateData{
		Title:     title,
		CSRFToken: h.sessionManager.Token(r.Context()),
		Data:      form,
	}

	if err := h.renderer.Render(w, r, "admin/projects_form", data); err != nil {
		logAndInternalError(w, "rendering project form", "error", err)
	}
}
