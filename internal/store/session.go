// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aturgenev/identity-store/internal/crypto"
	"github.com/aturgenev/identity-store/internal/logger"
	"github.com/aturgenev/identity-store/models"
)

// sessionFileName is the backing file for the current-session record,
// relative to the store's data directory. Distinct from the user list file.
const sessionFileName = "current-user.dat"

// sessionTracker is the file-backed implementation of [SessionTracker]. The
// decrypted payload of its backing file is a single JSON
// [models.SessionRecord]. Sessions have no expiry; they persist until an
// explicit logout or until the file becomes unreadable.
type sessionTracker struct {
	path   string
	cipher crypto.Cipher

	// strict mirrors the repository corruption policy for the session
	// file: true surfaces ErrCorruptStore, false treats an unreadable file
	// as "no active session".
	strict bool

	logger *logger.Logger
}

// NewSessionTracker constructs a [SessionTracker] persisting to
// <dataDir>/current-user.dat.
func NewSessionTracker(dataDir string, cipher crypto.Cipher, strict bool, log *logger.Logger) SessionTracker {
	return &sessionTracker{
		path:   filepath.Join(dataDir, sessionFileName),
		cipher: cipher,
		strict: strict,
		logger: log,
	}
}

// Establish implements [SessionTracker].
func (t *sessionTracker) Establish(ctx context.Context, user models.UserRecord) error {
	mu := lockForPath(t.path)
	mu.Lock()
	defer mu.Unlock()

	session := models.SnapshotSession(user, time.Now().UTC())

	payload, err := json.Marshal(session)
	if err != nil {
		t.logger.Error().Err(err).Msg("serialize session failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	envelope, err := t.cipher.Encrypt(payload)
	if err != nil {
		t.logger.Error().Err(err).Msg("encrypt session failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	if err := writeEnvelopeFile(t.path, envelope); err != nil {
		t.logger.Error().Err(err).Str("path", t.path).Msg("write session failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	t.logger.Info().Str("id", session.ID).Msg("session established")
	return nil
}

// Current implements [SessionTracker].
func (t *sessionTracker) Current(ctx context.Context) (*models.SessionRecord, error) {
	mu := lockForPath(t.path)
	mu.Lock()
	defer mu.Unlock()

	envelope, exists, err := readEnvelopeFile(t.path)
	if err != nil {
		return t.corrupt("read session failed", err)
	}
	if !exists {
		return nil, nil
	}

	payload, err := t.cipher.Decrypt(envelope)
	if err != nil {
		return t.corrupt("decrypt session failed", err)
	}

	var session models.SessionRecord
	if err := json.Unmarshal(payload, &session); err != nil {
		return t.corrupt("parse session failed", err)
	}

	return &session, nil
}

// corrupt applies the configured corruption policy for the session file:
// strict mode surfaces ErrCorruptStore, lax mode logs a warning and reports
// no active session.
func (t *sessionTracker) corrupt(msg string, cause error) (*models.SessionRecord, error) {
	if t.strict {
		t.logger.Error().Err(cause).Str("path", t.path).Msg(msg)
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, cause)
	}

	t.logger.Warn().Err(cause).Str("path", t.path).Msg(msg + ", treating as no active session")
	return nil, nil
}

// Clear implements [SessionTracker].
func (t *sessionTracker) Clear(ctx context.Context) error {
	mu := lockForPath(t.path)
	mu.Lock()
	defer mu.Unlock()

	if err := removeFile(t.path); err != nil {
		t.logger.Error().Err(err).Str("path", t.path).Msg("clear session failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	return nil
}
