// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package models

import "time"

// EntitlementStatus describes the license state reported by the host's
// entitlement engine. The identity store never produces or consumes these
// values itself; the types exist so hosts can expose the entitlement boundary
// next to authentication with a shared model vocabulary.
type EntitlementStatus struct {
	// Valid reports whether the application is currently entitled to run.
	Valid bool `json:"valid"`

	// Mode is the entitlement mode label, e.g. "licensed", "trial", "demo".
	Mode string `json:"mode"`

	// ExpiresAt is the end of the current entitlement window, if any.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Message is a host-facing explanation of the current state.
	Message string `json:"message,omitempty"`
}

// EntitlementLogEntry is a single activation/validation event recorded by the
// entitlement engine.
type EntitlementLogEntry struct {
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Detail  string    `json:"detail,omitempty"`
	Success bool      `json:"success"`
}
