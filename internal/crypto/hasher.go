// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for password hashing. Fixed rather than configurable so
// that stored hashes remain verifiable across releases.
const (
	// pbkdf2Iterations is the fixed iteration count. The threat model is a
	// single trusted device, but the count is kept high enough to make
	// offline dictionary attacks on a copied users file expensive.
	pbkdf2Iterations = 210_000

	// saltLength is the per-password random salt size in bytes.
	saltLength = 16

	// hashLength is the derived key size in bytes.
	hashLength = 64
)

// passwordHasher is the private implementation of [PasswordHasher] based on
// PBKDF2 with SHA-512.
type passwordHasher struct{}

// NewPasswordHasher constructs a [PasswordHasher] using PBKDF2-SHA512 with a
// 16-byte random salt, 64-byte output, and 210,000 iterations.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{}
}

// Hash implements [PasswordHasher]. It reads a fresh salt from the OS CSPRNG
// and derives the stored hash. Returns an error only if the random read
// fails.
func (h *passwordHasher) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, err
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, hashLength, sha512.New)
	return salt, hash, nil
}

// Verify implements [PasswordHasher]. It re-derives the hash from the
// candidate password and the stored salt, then compares against the stored
// hash with hmac.Equal to keep the comparison constant-time.
func (h *passwordHasher) Verify(password string, salt, hash []byte) bool {
	derived := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, hashLength, sha512.New)
	return hmac.Equal(derived, hash)
}
