// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package models

// OpResult is the base structured result returned across the host boundary.
// Public operations never raise errors to the host; they report success and a
// human-readable message instead. Internal storage and crypto detail never
// appears in Message.
type OpResult struct {
	// OK reports whether the operation succeeded.
	OK bool `json:"ok"`

	// Message is a short status text safe to surface to the end user
	// verbatim.
	Message string `json:"message"`
}

// CreateUserResult is returned by account creation.
type CreateUserResult struct {
	OpResult

	// UserID is the generated account identifier; empty on failure.
	UserID string `json:"user_id,omitempty"`
}

// LoginResult is returned by login and password verification operations.
type LoginResult struct {
	OpResult

	// User is the credential-free projection of the authenticated account;
	// nil on failure.
	User *UserInfo `json:"user,omitempty"`
}

// UsersResult is returned by account enumeration.
type UsersResult struct {
	OpResult

	// Users holds the projection of every account in the store.
	Users []UserInfo `json:"users,omitempty"`
}

// SessionResult is returned when querying the current session.
type SessionResult struct {
	OpResult

	// Session is the persisted login snapshot, or nil when nobody is
	// logged in.
	Session *SessionRecord `json:"session,omitempty"`
}
