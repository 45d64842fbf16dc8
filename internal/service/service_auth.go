// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package service

import (
	"context"
	"errors"

	"github.com/aturgenev/identity-store/internal/logger"
	"github.com/aturgenev/identity-store/internal/store"
	"github.com/aturgenev/identity-store/models"
)

// Boundary messages. Validation failures are surfaced to the end user
// verbatim; storage and crypto failures collapse to MsgOperationFailed so no
// internal detail leaks across the boundary. Strict-mode corruption gets its
// own message so hosts can alert instead of silently losing accounts.
const (
	MsgUserCreated     = "user created"
	MsgLoginSuccessful = "login successful"
	MsgLoggedOut       = "logged out"
	MsgPasswordChanged = "password changed"
	MsgUserDeleted     = "user deleted"
	MsgOperationFailed = "operation failed"
	MsgStoreUnreadable = "identity store is unreadable"
	MsgDuplicateUser   = "username is already taken"
	MsgWeakPassword    = "password must be at least 4 characters"
	MsgInvalidCreds    = "invalid username or password"
	MsgUserNotFound    = "user not found"
	MsgNoActiveSession = "no active session"
	MsgSessionReturned = "session found"
	MsgUsersEnumerated = "users listed"
)

// authService is the concrete implementation of [AuthService]. It holds no
// state of its own beyond its collaborators; every operation is a fresh
// read-modify-write cycle against the backing files.
type authService struct {
	users    store.UserRepository
	sessions store.SessionTracker
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService] over the given repository and
// session tracker.
//
// The returned service is safe for concurrent use; mutual exclusion is
// handled per backing file inside the store layer.
func NewAuthService(users store.UserRepository, sessions store.SessionTracker, log *logger.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   log,
	}
}

// CreateUser implements [AuthService].
func (a *authService) CreateUser(ctx context.Context, username, password, fullName string) models.CreateUserResult {
	user, err := a.users.Create(ctx, username, password, fullName)
	if err != nil {
		return models.CreateUserResult{OpResult: a.failure(ctx, "create user", err)}
	}

	return models.CreateUserResult{
		OpResult: models.OpResult{OK: true, Message: MsgUserCreated},
		UserID:   user.ID,
	}
}

// Login implements [AuthService]. Authentication and session establishment
// are two steps; a failure to persist the session after valid credentials is
// reported as a generic failure, not as bad credentials.
func (a *authService) Login(ctx context.Context, username, password string) models.LoginResult {
	user, err := a.users.Authenticate(ctx, username, password)
	if err != nil {
		return models.LoginResult{OpResult: a.failure(ctx, "login", err)}
	}

	if err := a.sessions.Establish(ctx, user); err != nil {
		return models.LoginResult{OpResult: a.failure(ctx, "establish session", err)}
	}

	info := user.Info()
	return models.LoginResult{
		OpResult: models.OpResult{OK: true, Message: MsgLoginSuccessful},
		User:     &info,
	}
}

// Logout implements [AuthService].
func (a *authService) Logout(ctx context.Context) models.OpResult {
	if err := a.sessions.Clear(ctx); err != nil {
		return a.failure(ctx, "logout", err)
	}

	return models.OpResult{OK: true, Message: MsgLoggedOut}
}

// GetCurrentUser implements [AuthService].
func (a *authService) GetCurrentUser(ctx context.Context) models.SessionResult {
	session, err := a.sessions.Current(ctx)
	if err != nil {
		return models.SessionResult{OpResult: a.failure(ctx, "get current user", err)}
	}

	if session == nil {
		return models.SessionResult{OpResult: models.OpResult{OK: true, Message: MsgNoActiveSession}}
	}

	return models.SessionResult{
		OpResult: models.OpResult{OK: true, Message: MsgSessionReturned},
		Session:  session,
	}
}

// ChangePassword implements [AuthService].
func (a *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) models.OpResult {
	if err := a.users.ChangePassword(ctx, username, oldPassword, newPassword); err != nil {
		return a.failure(ctx, "change password", err)
	}

	return models.OpResult{OK: true, Message: MsgPasswordChanged}
}

// GetAllUsers implements [AuthService].
func (a *authService) GetAllUsers(ctx context.Context) models.UsersResult {
	users, err := a.users.List(ctx)
	if err != nil {
		return models.UsersResult{OpResult: a.failure(ctx, "list users", err)}
	}

	return models.UsersResult{
		OpResult: models.OpResult{OK: true, Message: MsgUsersEnumerated},
		Users:    users,
	}
}

// DeleteUser implements [AuthService].
func (a *authService) DeleteUser(ctx context.Context, username string) models.OpResult {
	if err := a.users.Delete(ctx, username); err != nil {
		return a.failure(ctx, "delete user", err)
	}

	return models.OpResult{OK: true, Message: MsgUserDeleted}
}

// failure maps a sentinel error to its boundary result. Validation sentinels
// carry their message verbatim; everything else is logged with detail here
// and reported generically.
func (a *authService) failure(ctx context.Context, op string, err error) models.OpResult {
	switch {
	case errors.Is(err, store.ErrDuplicateUsername):
		return models.OpResult{Message: MsgDuplicateUser}
	case errors.Is(err, store.ErrWeakPassword):
		return models.OpResult{Message: MsgWeakPassword}
	case errors.Is(err, store.ErrInvalidCredentials):
		return models.OpResult{Message: MsgInvalidCreds}
	case errors.Is(err, store.ErrUserNotFound):
		return models.OpResult{Message: MsgUserNotFound}
	case errors.Is(err, store.ErrCorruptStore):
		a.logger.Error().Err(err).Str("op", op).Msg("identity store corruption surfaced")
		return models.OpResult{Message: MsgStoreUnreadable}
	default:
		a.logger.Error().Err(err).Str("op", op).Msg("operation failed")
		return models.OpResult{Message: MsgOperationFailed}
	}
}
