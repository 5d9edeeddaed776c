// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content entities stored in the database.
package model

import "time"

// Post defaults applied when the admin form leaves the fields empty.
const (
	DefaultReadTime = "5 min read"
	DefaultAuthor   = "Risith"
)

// Post represents a blog post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	ReadTime  string    `json:"read_time"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
