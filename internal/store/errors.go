package store

import "errors"

// Sentinel errors returned by repository and session methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrDuplicateUsername is returned when account creation fails because
	// another record already owns the same case-insensitive username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrWeakPassword is returned when a supplied password is shorter than
	// the minimum length. Checked before any hashing or persistence.
	ErrWeakPassword = errors.New("password is too short")

	// ErrInvalidCredentials is returned on authentication failure. It
	// deliberately covers both "unknown username" and "wrong password" so
	// that callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned when a mutation targets a username that
	// does not exist in the store.
	ErrUserNotFound = errors.New("user not found")
)

// Storage-level errors. These never cross the public boundary with detail;
// the service facade logs them and reports a generic failure.
var (
	// ErrStorageWriteFailed is returned when serializing, encrypting, or
	// atomically replacing a backing file fails.
	ErrStorageWriteFailed = errors.New("failed to write backing store")

	// ErrCorruptStore is returned, in strict mode only, when a backing
	// file exists but cannot be decrypted or parsed. In the default lax
	// mode the store degrades to empty instead.
	ErrCorruptStore = errors.New("backing store is unreadable")
)
