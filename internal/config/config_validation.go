// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// store invariants before it is used.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Store.DataDir == "" {
		return ErrMissingDataDir
	}

	if cfg.Store.Passphrase == "" {
		return ErrMissingPassphrase
	}

	return nil
}
