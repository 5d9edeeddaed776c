// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// ProfileID is the fixed identifier of the singleton profile document.
const ProfileID = "main"

// DefaultBio is the placeholder bio created on first read.
const DefaultBio = "idk, I need to put something here."

// Profile holds the site owner's bio. Exactly one row exists, keyed by
// ProfileID.
type Profile struct {
	ID        string    `json:"id"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"updated_at"`
}
