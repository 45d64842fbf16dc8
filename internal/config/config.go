// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package config

// StructuredConfig is the top-level configuration container for the identity
// store. It is populated by merging values from an optional .env file,
// environment variables, an optional JSON file, and compiled-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Store holds the settings of the encrypted identity store itself.
	Store Store `envPrefix:"IDENTITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// values. Populated via the IDENTITY_CONFIG environment variable.
	JSONFilePath string `env:"IDENTITY_CONFIG"`
}

// Store holds the configuration of the encrypted identity store.
type Store struct {
	// DataDir is the application-private writable directory supplied by
	// the host. users.dat and current-user.dat live here. Required.
	// Env: IDENTITY_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// Passphrase seeds the at-rest encryption key: the key is a one-way
	// hash of this value, derived once at store construction and held only
	// in memory. Defaults to the compiled-in application passphrase.
	// Env: IDENTITY_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// StrictCorruption selects the corruption policy. When false (the
	// default) an unreadable backing file degrades to an empty store with
	// a warning log; when true it surfaces a distinct unreadable-store
	// condition so hosts can alert instead of silently losing accounts.
	// Env: IDENTITY_STRICT_CORRUPTION
	StrictCorruption bool `env:"STRICT_CORRUPTION"`

	// LogFile is an optional path for file-backed logging. Empty means
	// log to stdout.
	// Env: IDENTITY_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// defaultPassphrase is the fixed application passphrase used when the host
// supplies none. It only defends the store against casual file inspection on
// a single trusted device; it is not a secret from a determined local
// attacker.
const defaultPassphrase = "identity-store-at-rest-v1"

// NewStructuredConfig builds a configuration from explicit values supplied
// by the host, applying the compiled-in passphrase default and validating the
// result. Hosts that prefer environment-driven configuration use
// [GetStructuredConfig] instead.
func NewStructuredConfig(dataDir, passphrase string, strictCorruption bool, logFile string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{
		Store: Store{
			DataDir:          dataDir,
			Passphrase:       passphrase,
			StrictCorruption: strictCorruption,
			LogFile:          logFile,
		},
	}

	if cfg.Store.Passphrase == "" {
		cfg.Store.Passphrase = defaultPassphrase
	}

	return cfg, cfg.validate()
}

// GetStructuredConfig loads, merges, and validates the store configuration
// from all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables (with a .env file loaded first, never
//     overriding real environment values)
//  2. JSON file (path resolved from source 1)
//  3. Compiled-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
