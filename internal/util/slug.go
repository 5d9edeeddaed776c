// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and validation.
package util

import (
	"regexp"
	"strings"
)

var (
	// slugStripRegex matches characters that never appear in a slug
	slugStripRegex = regexp.MustCompile(`[^a-z0-9 -]+`)
	// whitespaceRuns matches runs of whitespace
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a title to a URL-friendly slug.
// It lowercases the input, strips everything outside [a-z0-9 -],
// collapses whitespace runs to single hyphens, collapses repeated
// hyphens, and trims leading/trailing hyphens. The function is
// deterministic and idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))

	// Strip everything that is not a lowercase letter, digit, space, or hyphen
	result = slugStripRegex.ReplaceAllString(result, "")

	// Collapse whitespace runs to single hyphens
	result = whitespaceRuns.ReplaceAllString(result, "-")

	// Collapse repeated hyphens
	result = multipleHyphens.ReplaceAllString(result, "-")

	// Trim hyphens from start and end
	return strings.Trim(result, "-")
}

// IsValidSlug checks if a string is a valid slug format.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}

	// Check if it only contains lowercase letters, numbers, and hyphens
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	// Check that it doesn't start or end with a hyphen
	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	// Check for consecutive hyphens
	if strings.Contains(s, "--") {
		return false
	}

	return true
}
