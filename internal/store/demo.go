// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/risith/folio/internal/model"
)

// SeedDemo creates sample content for a fresh install. It does nothing
// unless enabled, and skips seeding when any posts already exist.
// The sample post and project are written in one transaction so a failure
// leaves no half-seeded content behind.
func SeedDemo(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	count, err := New(db).CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	queries := New(db).WithTx(tx)

	now := time.Now()
	post, err := queries.CreatePost(ctx, CreatePostParams{
		Title:     "Hello, world",
		Slug:      "hello-world",
		Excerpt:   "A first post to prove the blog works.",
		Content:   "This is a sample post. Edit or delete it from the admin panel.",
		ReadTime:  model.DefaultReadTime,
		Author:    model.DefaultAuthor,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating sample post: %w", err)
	}

	project, err := queries.CreateProject(ctx, CreateProjectParams{
		Title:       "This website",
		Slug:        "this-website",
		Description: "The blog and portfolio site you are looking at.",
		Tech:        []string{"Go", "SQLite"},
		Status:      model.ProjectStatusInProgress,
		Author:      model.DefaultAuthor,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("creating sample project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing demo content: %w", err)
	}

	slog.Info("seeded demo content", "post_id", post.ID, "project_id", project.ID)
	return nil
}
