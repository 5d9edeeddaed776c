// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	db, sm, renderer, cleanup := testHandlerSetup(t)
	defer cleanup()

	createTestPost(t, db, "Published One", "published-one", true)
	createTestPost(t, db, "Draft One", "draft-one", false)
	createTestProject(t, db, "Project One", "project-one", true)

	h := NewAdminHandler(db, renderer, sm)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	withSession(sm, http.HandlerFunc(h.Dashboard)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	// 2 posts total, 1 published, 1 project
	if !strings.Contains(body, "1 published") {
		t.Error("dashboard should show the published post count")
	}
}

func TestAdminHandler_Dashboard_Empty(t *testing.T) {
	db, sm, renderer, cleanup := testHandlerSetup(t)
	defer cleanup()

	h := NewAdminHandler(db, renderer, sm)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	withSession(sm, http.HandlerFunc(h.Dashboard)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "No events recorded") {
		t.Error("dashboard should show the empty events message")
	}
}
