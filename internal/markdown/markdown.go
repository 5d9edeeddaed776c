// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown renders stored post content into sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// htmlSanitizer strips dangerous markup from rendered content. Post bodies
// are author-supplied but pass through the same policy as user-generated
// content so a stolen admin session cannot plant scripts on public pages.
var htmlSanitizer = bluemonday.UGCPolicy()

// md passes raw HTML through to the output; bluemonday filters it afterwards.
var md = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts markdown content into sanitized HTML suitable for
// embedding in a template. Raw HTML in the source survives only if the
// sanitizer allows it.
func Render(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
}

// SanitizeHTML runs raw HTML through the sanitization policy without
// markdown conversion.
func SanitizeHTML(content string) template.HTML {
	return template.HTML(htmlSanitizer.Sanitize(content))
}
