// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"sync"
	"time"

	"github.com/risith/folio/internal/seo"
	"github.com/risith/folio/internal/store"
)

// sitemapTTL is how long a generated sitemap is served before the post
// list is queried again.
const sitemapTTL = time.Hour

// SEOHandler serves /sitemap.xml and /robots.txt.
// The sitemap is cached with a TTL since it only changes when content does.
type SEOHandler struct {
	queries *store.Queries
	siteURL string

	mu       sync.RWMutex
	xml      []byte
	cachedAt time.Time
}

// NewSEOHandler creates a new SEOHandler. siteURL must not have a
// trailing slash.
func NewSEOHandler(db *sql.DB, siteURL string) *SEOHandler {
	return &SEOHandler{
		queries: store.New(db),
		siteURL: siteURL,
	}
}

// Sitemap serves the sitemap XML.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	xml, err := h.sitemapXML(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to generate sitemap", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(xml)
}

func (h *SEOHandler) sitemapXML(ctx context.Context) ([]byte, error) {
	h.mu.RLock()
	if h.xml != nil && time.Since(h.cachedAt) < sitemapTTL {
		xml := h.xml
		h.mu.RUnlock()
		return xml, nil
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Double-check after acquiring write lock
	if h.xml != nil && time.Since(h.cachedAt) < sitemapTTL {
		return h.xml, nil
	}

	posts, err := h.queries.ListPublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]seo.SitemapEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, seo.SitemapEntry{
			Slug:      p.Slug,
			UpdatedAt: p.UpdatedAt,
		})
	}

	xml, err := seo.GenerateSitemap(h.siteURL, entries)
	if err != nil {
		return nil, err
	}

	h.xml = xml
	h.cachedAt = time.Now()
	return xml, nil
}

// Invalidate clears the cached sitemap, forcing regeneration on next request.
func (h *SEOHandler) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.xml = nil
	h.cachedAt = time.Time{}
}

// Robots serves robots.txt. The admin and auth routes are excluded from
// crawling.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(h.siteURL, false)))
}
