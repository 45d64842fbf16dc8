// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Turgenev

package store

import (
	"path/filepath"
	"sync"
)

// pathLocks is a process-wide registry of per-file mutexes. Every full
// read-modify-write cycle against a backing file must run under the lock for
// that file's path; otherwise two concurrent mutations read the same
// pre-mutation state and the last save silently discards the other's change.
var pathLocks sync.Map // map[string]*sync.Mutex

// lockForPath returns the mutex guarding the given file path. Paths are
// cleaned to an absolute form so that two handles on the same file always
// share one mutex.
func lockForPath(path string) *sync.Mutex {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	mu, _ := pathLocks.LoadOrStore(abs, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
