// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

// Package store owns the two durable artifacts of the identity subsystem:
// the encrypted user list (users.dat) and the encrypted current-session
// record (current-user.dat). Each operation is a full open-mutate-flush
// cycle; no state is shared in memory between instances.
package store

import (
	"context"

	"github.com/aturgenev/identity-store/models"
)

// UserRepository owns the durable account list. Every mutation runs under a
// process-wide per-store-path lock, so two concurrent mutations of the same
// directory cannot lose each other's writes.
type UserRepository interface {
	// Load reads and decrypts the full user list. An absent backing file
	// yields an empty list and no error. An unreadable file yields
	// ErrCorruptStore in strict mode, or a warning log plus an empty list
	// in the default fail-open mode.
	Load(ctx context.Context) ([]models.UserRecord, error)

	// Save serializes, encrypts, and atomically replaces the backing file
	// with the given records. Failures wrap ErrStorageWriteFailed.
	Save(ctx context.Context, records []models.UserRecord) error

	// Create validates and appends a new account, then persists the full
	// list. Fails with ErrDuplicateUsername (case-insensitive) or
	// ErrWeakPassword before any hashing or persistence occurs.
	Create(ctx context.Context, username, password, fullName string) (models.UserRecord, error)

	// Authenticate verifies credentials. Unknown usernames and wrong
	// passwords both fail with ErrInvalidCredentials. Success stamps
	// LastLogin and persists.
	Authenticate(ctx context.Context, username, password string) (models.UserRecord, error)

	// ChangePassword replaces the stored salt/hash pair after verifying
	// the old password. A fresh salt is generated; salts are never reused
	// across a password change.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error

	// List returns the credential-free projection of every account.
	List(ctx context.Context) ([]models.UserInfo, error)

	// Delete removes the account with the given username and persists.
	Delete(ctx context.Context, username string) error
}

// SessionTracker owns the single persisted "current session" record.
type SessionTracker interface {
	// Establish snapshots the user's display fields plus the current time
	// and writes the encrypted session file.
	Establish(ctx context.Context, user models.UserRecord) error

	// Current returns the persisted session, or nil when the file is
	// absent. An unreadable file yields ErrCorruptStore in strict mode and
	// nil in the default fail-open mode.
	Current(ctx context.Context) (*models.SessionRecord, error)

	// Clear removes the session file. An already-absent file is success.
	Clear(ctx context.Context) error
}
