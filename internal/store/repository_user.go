// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aturgenev/identity-store/internal/crypto"
	"github.com/aturgenev/identity-store/internal/logger"
	"github.com/aturgenev/identity-store/models"
)

const (
	// usersFileName is the backing file for the account list, relative to
	// the store's data directory.
	usersFileName = "users.dat"

	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 4
)

// userRepository is the file-backed implementation of [UserRepository]. The
// decrypted payload of its backing file is a JSON array of
// [models.UserRecord]; on disk the payload is wrapped in the cipher envelope.
type userRepository struct {
	// path is the absolute location of users.dat.
	path string

	cipher crypto.Cipher
	hasher crypto.PasswordHasher
	ids    *IDGenerator

	// strict controls the corruption policy: true surfaces ErrCorruptStore
	// when the backing file cannot be decrypted or parsed, false degrades
	// to an empty list with a warning log.
	strict bool

	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] persisting to
// <dataDir>/users.dat. The caller owns the cipher key material; the
// repository holds no process-wide state beyond the shared path-lock
// registry.
func NewUserRepository(dataDir string, cipher crypto.Cipher, hasher crypto.PasswordHasher, strict bool, log *logger.Logger) UserRepository {
	return &userRepository{
		path:   filepath.Join(dataDir, usersFileName),
		cipher: cipher,
		hasher: hasher,
		ids:    NewIDGenerator(),
		strict: strict,
		logger: log,
	}
}

// Load implements [UserRepository].
func (r *userRepository) Load(ctx context.Context) ([]models.UserRecord, error) {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	return r.load()
}

// load reads, decrypts, and deserializes the backing file. Callers must hold
// the path lock.
func (r *userRepository) load() ([]models.UserRecord, error) {
	envelope, exists, err := readEnvelopeFile(r.path)
	if err != nil {
		return r.corrupt("read user store failed", err)
	}
	if !exists {
		return []models.UserRecord{}, nil
	}

	payload, err := r.cipher.Decrypt(envelope)
	if err != nil {
		// ErrMalformedEnvelope and ErrDecryptionFailed carry distinct
		// detail into the log; callers see one unreadable-store outcome.
		return r.corrupt("decrypt user store failed", err)
	}

	var records []models.UserRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return r.corrupt("parse user store failed", err)
	}

	return records, nil
}

// corrupt applies the configured corruption policy: strict mode surfaces
// ErrCorruptStore, lax mode logs a warning and degrades to an empty list.
func (r *userRepository) corrupt(msg string, cause error) ([]models.UserRecord, error) {
	if r.strict {
		r.logger.Error().Err(cause).Str("path", r.path).Msg(msg)
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, cause)
	}

	r.logger.Warn().Err(cause).Str("path", r.path).Msg(msg + ", degrading to empty list")
	return []models.UserRecord{}, nil
}

// Save implements [UserRepository].
func (r *userRepository) Save(ctx context.Context, records []models.UserRecord) error {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	return r.save(records)
}

// save serializes, encrypts, and atomically replaces the backing file.
// Callers must hold the path lock.
func (r *userRepository) save(records []models.UserRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		r.logger.Error().Err(err).Msg("serialize user store failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	envelope, err := r.cipher.Encrypt(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("encrypt user store failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	if err := writeEnvelopeFile(r.path, envelope); err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("write user store failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	return nil
}

// Create implements [UserRepository].
func (r *userRepository) Create(ctx context.Context, username, password, fullName string) (models.UserRecord, error) {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	records, err := r.load()
	if err != nil {
		return models.UserRecord{}, err
	}

	key := models.NormalizeUsername(username)
	if _, found := findByKey(records, key); found {
		return models.UserRecord{}, ErrDuplicateUsername
	}
	if len(password) < minPasswordLength {
		return models.UserRecord{}, ErrWeakPassword
	}

	salt, hash, err := r.hasher.Hash(password)
	if err != nil {
		r.logger.Error().Err(err).Msg("password hashing failed")
		return models.UserRecord{}, fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	record := models.UserRecord{
		ID:           r.ids.Generate(),
		Username:     username,
		UsernameKey:  key,
		FullName:     fullName,
		PasswordSalt: hex.EncodeToString(salt),
		PasswordHash: hex.EncodeToString(hash),
		CreatedAt:    time.Now().UTC(),
	}

	records = append(records, record)
	if err := r.save(records); err != nil {
		return models.UserRecord{}, err
	}

	r.logger.Info().Str("id", record.ID).Str("username_key", key).Msg("user created")
	return record, nil
}

// Authenticate implements [UserRepository].
func (r *userRepository) Authenticate(ctx context.Context, username, password string) (models.UserRecord, error) {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	records, err := r.load()
	if err != nil {
		return models.UserRecord{}, err
	}

	key := models.NormalizeUsername(username)
	idx, found := findByKey(records, key)
	if !found {
		// Same failure as a wrong password: unknown usernames must not
		// be distinguishable by callers.
		return models.UserRecord{}, ErrInvalidCredentials
	}

	if !r.verify(password, records[idx]) {
		return models.UserRecord{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	records[idx].LastLogin = &now
	if err := r.save(records); err != nil {
		return models.UserRecord{}, err
	}

	return records[idx], nil
}

// ChangePassword implements [UserRepository].
func (r *userRepository) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	key := models.NormalizeUsername(username)
	idx, found := findByKey(records, key)
	if !found {
		return ErrUserNotFound
	}

	if !r.verify(oldPassword, records[idx]) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	// Fresh salt on every change; salts are never carried across
	// password generations.
	salt, hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		r.logger.Error().Err(err).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	}

	records[idx].PasswordSalt = hex.EncodeToString(salt)
	records[idx].PasswordHash = hex.EncodeToString(hash)

	if err := r.save(records); err != nil {
		return err
	}

	r.logger.Info().Str("id", records[idx].ID).Msg("password changed")
	return nil
}

// List implements [UserRepository].
func (r *userRepository) List(ctx context.Context) ([]models.UserInfo, error) {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	infos := make([]models.UserInfo, 0, len(records))
	for _, record := range records {
		infos = append(infos, record.Info())
	}

	return infos, nil
}

// Delete implements [UserRepository].
func (r *userRepository) Delete(ctx context.Context, username string) error {
	mu := lockForPath(r.path)
	mu.Lock()
	defer mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	key := models.NormalizeUsername(username)
	idx, found := findByKey(records, key)
	if !found {
		return ErrUserNotFound
	}

	id := records[idx].ID
	records = append(records[:idx], records[idx+1:]...)
	if err := r.save(records); err != nil {
		return err
	}

	r.logger.Info().Str("id", id).Str("username_key", key).Msg("user deleted")
	return nil
}

// verify checks a candidate password against the stored salt/hash pair. A
// record whose salt or hash cannot be decoded counts as a failed
// verification, never as a distinct caller-visible condition.
func (r *userRepository) verify(password string, record models.UserRecord) bool {
	salt, err := hex.DecodeString(record.PasswordSalt)
	if err != nil {
		r.logger.Warn().Err(err).Str("id", record.ID).Msg("stored salt is not valid hex")
		return false
	}
	hash, err := hex.DecodeString(record.PasswordHash)
	if err != nil {
		r.logger.Warn().Err(err).Str("id", record.ID).Msg("stored hash is not valid hex")
		return false
	}

	return r.hasher.Verify(password, salt, hash)
}

// findByKey locates a record by its normalized username key.
func findByKey(records []models.UserRecord, key string) (int, bool) {
	for i, record := range records {
		if record.UsernameKey == key {
			return i, true
		}
	}
	return 0, false
}
