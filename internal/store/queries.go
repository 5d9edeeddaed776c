// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides database access for posts, projects, the
// profile singleton, users, and the event log.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/risith/folio/internal/model"
)

// DBTX is the interface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries wraps a database handle and exposes typed query methods.
type Queries struct {
	db DBTX
}

// New returns a Queries bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// ---- Posts ----

const postColumns = `id, title, slug, excerpt, content, read_time, author, published, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
		&p.ReadTime, &p.Author, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreatePostParams holds the fields for creating a post.
type CreatePostParams struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	ReadTime  string
	Author    string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePost inserts a new post and returns it.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (model.Post, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, excerpt, content, read_time, author, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.ReadTime,
		arg.Author, arg.Published, arg.CreatedAt, arg.UpdatedAt)
	return scanPost(row)
}

// GetPostByID returns a post by its numeric ID.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (model.Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// GetPostBySlug returns a post by its slug.
func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (model.Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	return scanPost(row)
}

func (q *Queries) listPosts(ctx context.Context, query string, args ...any) ([]model.Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListPublishedPosts returns published posts, newest first.
func (q *Queries) ListPublishedPosts(ctx context.Context) ([]model.Post, error) {
	return q.listPosts(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE published = 1
		ORDER BY created_at DESC, id DESC`)
}

// ListRecentPosts returns the most recent published posts, up to limit.
func (q *Queries) ListRecentPosts(ctx context.Context, limit int64) ([]model.Post, error) {
	return q.listPosts(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE published = 1
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
}

// ListAllPosts returns every post regardless of published state, newest first.
func (q *Queries) ListAllPosts(ctx context.Context) ([]model.Post, error) {
	return q.listPosts(ctx, `
		SELECT `+postColumns+` FROM posts
		ORDER BY created_at DESC, id DESC`)
}

// UpdatePostParams holds the fields for updating a post.
type UpdatePostParams struct {
	ID        int64
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	ReadTime  string
	Author    string
	Published bool
	UpdatedAt time.Time
}

// UpdatePost updates all editable fields of a post and returns the result.
func (q *Queries) UpdatePost(ctx context.Context, arg UpdatePostParams) (model.Post, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = ?, slug = ?, excerpt = ?, content = ?, read_time = ?,
		    author = ?, published = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Excerpt, arg.Content, arg.ReadTime,
		arg.Author, arg.Published, arg.UpdatedAt, arg.ID)
	return scanPost(row)
}

// DeletePost removes a post by ID.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

// PostSlugExists reports whether any post uses the given slug.
func (q *Queries) PostSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE slug = ?`, slug).Scan(&count)
	return count > 0, err
}

// PostSlugExistsExceptParams identifies a slug check that excludes one post.
type PostSlugExistsExceptParams struct {
	Slug string
	ID   int64
}

// PostSlugExistsExcept reports whether a post other than the given ID uses the slug.
func (q *Queries) PostSlugExistsExcept(ctx context.Context, arg PostSlugExistsExceptParams) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE slug = ? AND id != ?`,
		arg.Slug, arg.ID).Scan(&count)
	return count > 0, err
}

// CountPosts returns the total number of posts.
func (q *Queries) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	return count, err
}

// CountPublishedPosts returns the number of published posts.
func (q *Queries) CountPublishedPosts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE published = 1`).Scan(&count)
	return count, err
}

// ---- Projects ----

const projectColumns = `id, title, slug, description, tech, status, github_url, live_url, image_url, author, published, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var tech string
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &tech, &p.Status,
		&p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Author, &p.Published,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	p.Tech = model.ParseTech(tech)
	return p, nil
}

// CreateProjectParams holds the fields for creating a project.
type CreateProjectParams struct {
	Title       string
	Slug        string
	Description string
	Tech        []string
	Status      string
	GithubURL   string
	LiveURL     string
	ImageURL    string
	Author      string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProject inserts a new project and returns it.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (model.Project, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, slug, description, tech, status, github_url, live_url, image_url, author, published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+projectColumns,
		arg.Title, arg.Slug, arg.Description, model.JoinTech(arg.Tech), arg.Status,
		arg.GithubURL, arg.LiveURL, arg.ImageURL, arg.Author, arg.Published,
		arg.CreatedAt, arg.UpdatedAt)
	return scanProject(row)
}

// GetProjectByID returns a project by its numeric ID.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (q *Queries) listProjects(ctx context.Context, query string, args ...any) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListPublishedProjects returns published projects, newest first.
func (q *Queries) ListPublishedProjects(ctx context.Context) ([]model.Project, error) {
	return q.listProjects(ctx, `
		SELECT `+projectColumns+` FROM projects
		WHERE published = 1
		ORDER BY created_at DESC, id DESC`)
}

// ListAllProjects returns every project regardless of published state, newest first.
func (q *Queries) ListAllProjects(ctx context.Context) ([]model.Project, error) {
	return q.listProjects(ctx, `
		SELECT `+projectColumns+` FROM projects
		ORDER BY created_at DESC, id DESC`)
}

// UpdateProjectParams holds the fields for updating a project.
type UpdateProjectParams struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	Tech        []string
	Status      string
	GithubURL   string
	LiveURL     string
	ImageURL    string
	Author      string
	Published   bool
	UpdatedAt   time.Time
}

// UpdateProject updates all editable fields of a project and returns the result.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (model.Project, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = ?, slug = ?, description = ?, tech = ?, status = ?,
		    github_url = ?, live_url = ?, image_url = ?, author = ?,
		    published = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+projectColumns,
		arg.Title, arg.Slug, arg.Description, model.JoinTech(arg.Tech), arg.Status,
		arg.GithubURL, arg.LiveURL, arg.ImageURL, arg.Author, arg.Published,
		arg.UpdatedAt, arg.ID)
	return scanProject(row)
}

// ProjectSlugExists reports whether any project uses the given slug.
func (q *Queries) ProjectSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE slug = ?`, slug).Scan(&count)
	return count > 0, err
}

// ProjectSlugExistsExceptParams identifies a slug check that excludes one project.
type ProjectSlugExistsExceptParams struct {
	Slug string
	ID   int64
}

// ProjectSlugExistsExcept reports whether a project other than the given ID uses the slug.
func (q *Queries) ProjectSlugExistsExcept(ctx context.Context, arg ProjectSlugExistsExceptParams) (bool, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE slug = ? AND id != ?`,
		arg.Slug, arg.ID).Scan(&count)
	return count > 0, err
}

// DeleteProject removes a project by ID.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}

// CountProjects returns the total number of projects.
func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

// ---- Profile ----

// GetProfile returns the profile row with the given ID.
func (q *Queries) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	var p model.Profile
	err := q.db.QueryRowContext(ctx,
		`SELECT id, bio, updated_at FROM profile WHERE id = ?`, id).
		Scan(&p.ID, &p.Bio, &p.UpdatedAt)
	return p, err
}

// UpsertProfileParams holds the fields for writing the profile.
type UpsertProfileParams struct {
	ID        string
	Bio       string
	UpdatedAt time.Time
}

// UpsertProfile inserts or replaces the profile row and returns it.
func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (model.Profile, error) {
	var p model.Profile
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO profile (id, bio, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET bio = excluded.bio, updated_at = excluded.updated_at
		RETURNING id, bio, updated_at`,
		arg.ID, arg.Bio, arg.UpdatedAt).
		Scan(&p.ID, &p.Bio, &p.UpdatedAt)
	return p, err
}

// UpdateProfileBio replaces the bio of the profile singleton, creating the
// row if it does not exist yet.
func (q *Queries) UpdateProfileBio(ctx context.Context, bio string) (model.Profile, error) {
	return q.UpsertProfile(ctx, UpsertProfileParams{
		ID:        model.ProfileID,
		Bio:       bio,
		UpdatedAt: time.Now(),
	})
}

// ---- Users ----

const userColumns = `id, email, password_hash, name, role, created_at, updated_at, last_login_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	return u, err
}

// CreateUserParams holds the fields for creating a user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUser inserts a new user and returns it.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+userColumns,
		arg.Email, arg.PasswordHash, arg.Name, arg.Role, arg.CreatedAt, arg.UpdatedAt)
	return scanUser(row)
}

// GetUserByEmail returns a user by email address.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// GetUserByID returns a user by numeric ID.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// UpdateUserPasswordParams identifies a user and their new password hash.
type UpdateUserPasswordParams struct {
	ID           int64
	PasswordHash string
	UpdatedAt    time.Time
}

// UpdateUserPassword replaces a user's password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		arg.PasswordHash, arg.UpdatedAt, arg.ID)
	return err
}

// UpdateUserLastLogin records a successful login time.
func (q *Queries) UpdateUserLastLogin(ctx context.Context, id int64, at time.Time) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ?`, at, id)
	return err
}

// ---- Events ----

// CreateEventParams holds the fields for recording an event.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}

// CreateEvent records an entry in the event log.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, user_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Level, arg.Category, arg.Message, arg.UserID, arg.Metadata, arg.CreatedAt)
	return err
}

// ListRecentEvents returns the newest event log entries, up to limit.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, user_id, metadata, created_at
		FROM events
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.UserID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
