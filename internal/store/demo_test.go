// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemo_Disabled(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	require.NoError(t, SeedDemo(t.Context(), db, false))

	count, err := New(db).CountPosts(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeedDemo_Enabled(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	require.NoError(t, SeedDemo(t.Context(), db, true))

	q := New(db)

	post, err := q.GetPostBySlug(t.Context(), "hello-world")
	require.NoError(t, err)
	assert.True(t, post.Published)
	assert.Equal(t, "5 min read", post.ReadTime)

	projects, err := q.ListPublishedProjects(t.Context())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "this-website", projects[0].Slug)
	assert.Equal(t, []string{"Go", "SQLite"}, projects[0].Tech)
}

func TestSeedDemo_SkipsExistingContent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	require.NoError(t, SeedDemo(t.Context(), db, true))
	require.NoError(t, SeedDemo(t.Context(), db, true))

	count, err := New(db).CountPosts(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
