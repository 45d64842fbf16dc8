package crypto

import "errors"

// Sentinel errors returned by [Cipher.Decrypt]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrMalformedEnvelope is returned when an envelope lacks the IV
	// delimiter or either half is not valid hex of the expected length.
	// The ciphertext was never handed to the cipher.
	ErrMalformedEnvelope = errors.New("malformed ciphertext envelope")

	// ErrDecryptionFailed is returned when the envelope encoding is intact
	// but the cipher operation rejects the ciphertext: wrong key,
	// truncated data, or bit corruption surfacing as invalid padding.
	ErrDecryptionFailed = errors.New("decryption failed")
)
