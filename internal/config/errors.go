package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingDataDir indicates that no data directory was supplied; the
	// store cannot place its backing files without one.
	ErrMissingDataDir = errors.New("identity store data directory is required")

	// ErrMissingPassphrase indicates that the at-rest passphrase resolved
	// to empty, which would derive a predictable encryption key.
	ErrMissingPassphrase = errors.New("identity store passphrase is required")
)
