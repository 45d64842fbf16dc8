// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

// Package crypto implements the two cryptographic primitives of the identity
// store: the at-rest envelope cipher and the password key-derivation hasher.
//
// Neither primitive performs I/O; both operate on in-memory values and are
// composed by the store layer.
package crypto

// Cipher protects serialized payloads at rest. Implementations hold a single
// symmetric key for the process lifetime; the key itself is never persisted.
type Cipher interface {
	// Encrypt seals plaintext into a self-describing envelope string. A
	// fresh random initialization vector is generated on every call, so
	// two encryptions of identical plaintext never produce identical
	// envelopes.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens an envelope previously produced by Encrypt. It returns
	// ErrMalformedEnvelope when the envelope encoding itself is broken and
	// ErrDecryptionFailed when the cipher rejects the ciphertext (wrong
	// key, truncation, bit corruption). Callers log the two distinctly but
	// must collapse them to one "unreadable store" outcome at the public
	// boundary.
	Decrypt(envelope string) ([]byte, error)
}

// PasswordHasher derives verifiable, non-reversible password representations.
type PasswordHasher interface {
	// Hash generates a fresh random salt and derives the stored hash for
	// password. The salt is never reused across passwords or password
	// changes.
	Hash(password string) (salt, hash []byte, err error)

	// Verify re-derives the hash from password and salt and compares it
	// against the stored hash in constant time.
	Verify(password string, salt, hash []byte) bool
}
