// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

// Package service exposes the public surface of the identity store to the
// privileged host process. It composes the identity repository and the
// session tracker and converts their sentinel errors into structured results;
// no error or panic ever crosses the host boundary.
package service

import (
	"context"

	"github.com/aturgenev/identity-store/models"
)

// AuthService is the boundary consumed by the host. All operations are
// synchronous with respect to their own backing store and safe for concurrent
// callers within one process.
type AuthService interface {
	// CreateUser registers a new account.
	CreateUser(ctx context.Context, username, password, fullName string) models.CreateUserResult

	// Login authenticates the credentials and, on success, establishes the
	// persisted session.
	Login(ctx context.Context, username, password string) models.LoginResult

	// Logout clears the persisted session unconditionally, whether or not
	// one currently exists.
	Logout(ctx context.Context) models.OpResult

	// GetCurrentUser reports who is currently logged in, surviving process
	// restarts. A nil session with OK=true means nobody is logged in.
	GetCurrentUser(ctx context.Context) models.SessionResult

	// ChangePassword replaces an account's password after verifying the
	// old one.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) models.OpResult

	// GetAllUsers enumerates every account as a credential-free
	// projection.
	GetAllUsers(ctx context.Context) models.UsersResult

	// DeleteUser removes an account by username (case-insensitive).
	DeleteUser(ctx context.Context, username string) models.OpResult
}
