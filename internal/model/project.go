// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// Project statuses
const (
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusOnHold     = "On Hold"
	ProjectStatusPlanning   = "Planning"
)

// ValidProjectStatuses contains all valid project statuses.
var ValidProjectStatuses = []string{
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
	ProjectStatusPlanning,
}

// IsValidProjectStatus checks if a status is one of the known values.
func IsValidProjectStatus(status string) bool {
	for _, s := range ValidProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Project represents a portfolio project.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech"`
	Status      string    `json:"status"`
	GithubURL   string    `json:"github_url,omitempty"`
	LiveURL     string    `json:"live_url,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Author      string    `json:"author"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JoinTech serializes a tech list into the comma-delimited form stored
// in the database.
func JoinTech(tech []string) string {
	var out []string
	for _, t := range tech {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ",")
}

// ParseTech splits the stored comma-delimited tech string into a slice.
// Empty entries are dropped.
func ParseTech(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
