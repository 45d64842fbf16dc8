// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// envelopeCipher is the private implementation of [Cipher]. It wraps
// AES-256-CBC with a per-operation random IV. The output envelope is
// "<ivHex>:<cipherHex>" so that decryption is self-describing and stateless.
//
// Per-call fresh IVs prevent ciphertext pattern leakage across repeated
// encodings of similar JSON payloads (many users share field names) under
// CBC mode.
type envelopeCipher struct {
	// key is the 256-bit AES key, derived once at construction and held
	// only in memory for the process lifetime.
	key []byte
}

// NewCipher constructs a [Cipher] keyed by a one-way hash of the given
// application passphrase. The passphrase itself is discarded; only the
// SHA-256 digest (the AES-256 key) is retained, and never persisted.
func NewCipher(passphrase string) Cipher {
	key := sha256.Sum256([]byte(passphrase))
	return &envelopeCipher{key: key[:]}
}

// Encrypt implements [Cipher]. It pads plaintext to the AES block size with
// PKCS#7, encrypts it under CBC with a fresh random 16-byte IV, and returns
// the envelope "<ivHex>:<cipherHex>".
func (c *envelopeCipher) Encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := padPKCS7(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [Cipher]. It splits the envelope on the IV delimiter,
// hex-decodes both halves, decrypts under CBC, and strips the PKCS#7 padding.
//
// Returns ErrMalformedEnvelope when the envelope encoding is broken and
// ErrDecryptionFailed when the ciphertext itself is rejected.
func (c *envelopeCipher) Decrypt(envelope string) ([]byte, error) {
	ivHex, cipherHex, found := strings.Cut(envelope, ":")
	if !found {
		return nil, fmt.Errorf("%w: missing iv delimiter", ErrMalformedEnvelope)
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("%w: decode iv: %v", ErrMalformedEnvelope, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv length %d", ErrMalformedEnvelope, len(iv))
	}

	ciphertext, err := hex.DecodeString(cipherHex)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedEnvelope, err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrDecryptionFailed, len(ciphertext))
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := unpadPKCS7(plaintext, aes.BlockSize)
	if err != nil {
		// Wrong key and corrupted ciphertext both surface here as
		// invalid padding.
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return unpadded, nil
}

// padPKCS7 appends PKCS#7 padding so len(result) is a multiple of blockSize.
func padPKCS7(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// unpadPKCS7 validates and strips PKCS#7 padding.
func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-padLen], nil
}
