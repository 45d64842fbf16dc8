// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

// Package identitystore is the entry point consumed by the privileged host
// process. It assembles the encrypted identity repository, the session
// tracker, and the authentication facade over a host-supplied data
// directory.
//
// The host receives a [Service] and talks to it exclusively through
// structured results; no error, panic, or cryptographic detail crosses this
// boundary.
package identitystore

import (
	"github.com/aturgenev/identity-store/internal/config"
	"github.com/aturgenev/identity-store/internal/crypto"
	"github.com/aturgenev/identity-store/internal/logger"
	"github.com/aturgenev/identity-store/internal/service"
	"github.com/aturgenev/identity-store/internal/store"
)

// Service is the authentication boundary exposed to the host. See
// [service.AuthService] for the operation contracts.
type Service = service.AuthService

// EntitlementService is the client-visible contract of the host's
// license-entitlement engine. The identity store neither implements nor
// depends on it; the alias exists so hosts can wire both privileged
// boundaries against one vocabulary.
type EntitlementService = service.EntitlementService

// Options configures a store handle. There is no process-wide singleton:
// each Open call returns an independent handle owned by the caller, and two
// handles on the same directory serialize through a shared per-path lock.
type Options struct {
	// DataDir is the application-private writable directory for
	// users.dat and current-user.dat. Required.
	DataDir string

	// Passphrase seeds the at-rest encryption key. Empty selects the
	// compiled-in application passphrase.
	Passphrase string

	// StrictCorruption surfaces unreadable backing files as a distinct
	// failure instead of degrading to an empty store.
	StrictCorruption bool

	// LogFile directs diagnostics to a file instead of stdout.
	LogFile string
}

// Open constructs a [Service] from explicit options.
func Open(opts Options) (Service, error) {
	cfg, err := config.NewStructuredConfig(opts.DataDir, opts.Passphrase, opts.StrictCorruption, opts.LogFile)
	if err != nil {
		return nil, err
	}

	return open(cfg), nil
}

// OpenFromEnv constructs a [Service] from the layered configuration sources
// (.env file, environment, optional JSON file, compiled-in defaults).
func OpenFromEnv() (Service, error) {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return open(cfg), nil
}

func open(cfg *config.StructuredConfig) Service {
	log := logger.NewLogger("identity-store")
	if cfg.Store.LogFile != "" {
		log = logger.NewFileLogger("identity-store", cfg.Store.LogFile)
	}

	cipher := crypto.NewCipher(cfg.Store.Passphrase)
	hasher := crypto.NewPasswordHasher()

	users := store.NewUserRepository(cfg.Store.DataDir, cipher, hasher, cfg.Store.StrictCorruption, log)
	sessions := store.NewSessionTracker(cfg.Store.DataDir, cipher, cfg.Store.StrictCorruption, log)

	return service.NewAuthService(users, sessions, log)
}
