// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package models

import (
	"strings"
	"time"
)

// UserRecord is a single account entry in the encrypted user list.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside the repository boundary.
type UserRecord struct {
	// ID is the opaque unique identifier of the account, generated once
	// at creation and never reused.
	ID string `json:"id"`

	// Username is the login name in the exact casing the user typed at
	// registration. Display-only; identity comparisons go through
	// UsernameKey.
	Username string `json:"username"`

	// UsernameKey is the lower-cased lookup form of Username. Uniqueness
	// across the repository is enforced on this field only.
	UsernameKey string `json:"username_key"`

	// FullName is an optional display name with no uniqueness constraint.
	FullName string `json:"full_name"`

	// PasswordSalt is the hex-encoded per-password random salt fed into
	// the key-derivation function.
	PasswordSalt string `json:"password_salt"`

	// PasswordHash is the hex-encoded KDF output. This value is a derived
	// one-way representation, never a plaintext password.
	PasswordHash string `json:"password_hash"`

	// CreatedAt is set once when the account is created.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is nil until the first successful login and is updated on
	// every successful login after that.
	LastLogin *time.Time `json:"last_login"`
}

// Info returns the public projection of the record. Salt and hash fields are
// deliberately absent; this is the only bulk form in which account data may
// cross the public boundary.
func (u UserRecord) Info() UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// UserInfo is the credential-free projection of a [UserRecord].
type UserInfo struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// NormalizeUsername converts a username into its case-insensitive lookup
// form. All uniqueness checks and lookups operate on this value; the original
// casing is preserved separately for display.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
