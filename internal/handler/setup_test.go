// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"io/fs"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/risith/folio/internal/render"
	"github.com/risith/folio/internal/store"
	"github.com/risith/folio/internal/testutil"
	"github.com/risith/folio/web"
)

// testHandlerSetup creates a migrated database, a session manager, and a
// renderer backed by the embedded templates.
func testHandlerSetup(t *testing.T) (*sql.DB, *scs.SessionManager, *render.Renderer, func()) {
	t.Helper()

	db, cleanup := testutil.TestDB(t)

	sm := scs.New()
	sm.Lifetime = time.Hour

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		cleanup()
		t.Fatalf("sub FS: %v", err)
	}

	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		SiteName:       "Test Site",
		IsDev:          true,
	})
	if err != nil {
		cleanup()
		t.Fatalf("render.New: %v", err)
	}

	return db, sm, renderer, cleanup
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// withSession wraps a handler with session loading so scs context
// operations work in tests.
func withSession(sm *scs.SessionManager, h http.Handler) http.Handler {
	return sm.LoadAndSave(h)
}

// createTestPost inserts a post directly through the store layer.
func createTestPost(t *testing.T, db *sql.DB, title, slug string, published bool) {
	t.Helper()

	now := time.Now()
	_, err := store.New(db).CreatePost(t.Context(), store.CreatePostParams{
		Title:     title,
		Slug:      slug,
		Excerpt:   "An excerpt",
		Content:   "Some **content** here.",
		ReadTime:  "5 min read",
		Author:    "Risith",
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
}

// createTestProject inserts a project directly through the store layer.
func createTestProject(t *testing.T, db *sql.DB, title, slug string, published bool) {
	t.Helper()

	now := time.Now()
	_, err := store.New(db).CreateProject(t.Context(), store.CreateProjectParams{
		Title:       title,
		Slug:        slug,
		Description: "A project",
		Tech:        []string{"Go", "SQLite"},
		Status:      "In Progress",
		Author:      "Risith",
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
}
