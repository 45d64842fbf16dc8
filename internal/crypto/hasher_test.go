package crypto

import (
	"bytes"
	"testing"
)

func TestHash_SaltAndHashLengths(t *testing.T) {
	h := NewPasswordHasher()

	salt, hash, err := h.Hash("pass1234")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if len(salt) != 16 {
		t.Errorf("salt length = %d, want 16", len(salt))
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(hash))
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	h := NewPasswordHasher()

	salt1, hash1, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	salt2, hash2, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if bytes.Equal(salt1, salt2) {
		t.Fatalf("expected distinct salts for repeated hashing")
	}
	if bytes.Equal(hash1, hash2) {
		t.Fatalf("expected distinct hashes under distinct salts")
	}
}

func TestVerify_CorrectPassword(t *testing.T) {
	h := NewPasswordHasher()

	salt, hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !h.Verify("correct horse battery staple", salt, hash) {
		t.Fatal("expected Verify to accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewPasswordHasher()

	salt, hash, err := h.Hash("right password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h.Verify("wrong password", salt, hash) {
		t.Fatal("expected Verify to reject a wrong password")
	}
}

func TestVerify_WrongSalt(t *testing.T) {
	h := NewPasswordHasher()

	_, hash, err := h.Hash("some password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	otherSalt := bytes.Repeat([]byte{0xAB}, 16)
	if h.Verify("some password", otherSalt, hash) {
		t.Fatal("expected Verify to reject with a different salt")
	}
}
