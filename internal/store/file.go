// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// readEnvelopeFile reads the envelope string stored at path. The second
// return value reports whether the file exists; an absent file is not an
// error.
func readEnvelopeFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), true, nil
}

// writeEnvelopeFile atomically replaces the file at path with the envelope
// string. The data is first written to a temp file in the same directory and
// then renamed over the target, so a crash mid-write can never leave a
// half-written store behind.
func writeEnvelopeFile(path string, envelope string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.WriteString(envelope); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// removeFile deletes the file at path, treating "already absent" as success.
func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
