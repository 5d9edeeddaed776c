// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/risith/folio/internal/testutil"
)

func TestSEOHandler_Sitemap(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	createTestPost(t, db, "Sitemap Post", "sitemap-post", true)
	createTestPost(t, db, "Draft Post", "draft-post", false)

	h := NewSEOHandler(db, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	h.Sitemap(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q, want application/xml", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "https://example.com/blog/sitemap-post") {
		t.Error("sitemap should include published posts")
	}
	if strings.Contains(body, "draft-post") {
		t.Error("sitemap should not include drafts")
	}
}

func TestSEOHandler_Sitemap_CacheInvalidation(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewSEOHandler(db, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	h.Sitemap(w, req)

	if strings.Contains(w.Body.String(), "late-arrival") {
		t.Fatal("unexpected entry before creation")
	}

	createTestPost(t, db, "Late Arrival", "late-arrival", true)

	// Cached copy is served until invalidated
	w = httptest.NewRecorder()
	h.Sitemap(w, req)
	if strings.Contains(w.Body.String(), "late-arrival") {
		t.Error("sitemap should serve the cached copy")
	}

	h.Invalidate()
	w = httptest.NewRecorder()
	h.Sitemap(w, req)
	if !strings.Contains(w.Body.String(), "late-arrival") {
		t.Error("sitemap should regenerate after invalidation")
	}
}

func TestSEOHandler_Robots(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewSEOHandler(db, "https://example.com")

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	h.Robots(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{
		"Disallow: /admin",
		"Sitemap: https://example.com/sitemap.xml",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("robots.txt missing %q", want)
		}
	}
}
