package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aturgenev/identity-store/internal/crypto"
	"github.com/aturgenev/identity-store/internal/logger"
	"github.com/aturgenev/identity-store/models"
)

func newTestTracker(t *testing.T, strict bool) (SessionTracker, string) {
	t.Helper()
	dir := t.TempDir()
	tracker := NewSessionTracker(dir, crypto.NewCipher(testPassphrase), strict, logger.Nop())
	return tracker, dir
}

func testUser() models.UserRecord {
	return models.UserRecord{
		ID:        "0191b7a2-0000-7000-8000-000000000001",
		Username:  "Alice",
		FullName:  "Alice A",
		CreatedAt: time.Now().UTC(),
	}
}

func TestEstablish_ThenCurrent(t *testing.T) {
	tracker, _ := newTestTracker(t, false)
	ctx := context.Background()

	user := testUser()
	before := time.Now().UTC()
	if err := tracker.Establish(ctx, user); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	session, err := tracker.Current(ctx)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if session == nil {
		t.Fatal("expected an active session")
	}
	if session.ID != user.ID || session.Username != user.Username || session.FullName != user.FullName {
		t.Errorf("session snapshot mismatch: %+v", session)
	}
	if session.LoginTime.Before(before.Truncate(time.Second)) {
		t.Errorf("login time %v precedes establish call", session.LoginTime)
	}
}

func TestEstablish_SnapshotIsNotLive(t *testing.T) {
	tracker, _ := newTestTracker(t, false)
	ctx := context.Background()

	user := testUser()
	if err := tracker.Establish(ctx, user); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	// mutate the record after login; the persisted session must not follow
	user.FullName = "Renamed"

	session, err := tracker.Current(ctx)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if session.FullName != "Alice A" {
		t.Errorf("session followed a live record mutation: %q", session.FullName)
	}
}

func TestClear_ThenCurrent(t *testing.T) {
	tracker, _ := newTestTracker(t, false)
	ctx := context.Background()

	if err := tracker.Establish(ctx, testUser()); err != nil {
		t.Fatalf("Establish error: %v", err)
	}
	if err := tracker.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	session, err := tracker.Current(ctx)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if session != nil {
		t.Fatalf("expected no session after clear, got %+v", session)
	}
}

func TestClear_AbsentFileIsSuccess(t *testing.T) {
	tracker, _ := newTestTracker(t, false)

	if err := tracker.Clear(context.Background()); err != nil {
		t.Fatalf("expected success clearing an absent session, got %v", err)
	}
}

func TestCurrent_AbsentFile(t *testing.T) {
	tracker, _ := newTestTracker(t, false)

	session, err := tracker.Current(context.Background())
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session for absent file, got %+v", session)
	}
}

func TestCurrent_CorruptedFile_LaxIsNoSession(t *testing.T) {
	tracker, dir := newTestTracker(t, false)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, sessionFileName), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("corrupt file: %v", err)
	}

	session, err := tracker.Current(ctx)
	if err != nil {
		t.Fatalf("expected fail-open current, got %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session from corrupted file, got %+v", session)
	}
}

func TestCurrent_CorruptedFile_StrictSurfacesError(t *testing.T) {
	tracker, dir := newTestTracker(t, true)
	ctx := context.Background()

	if err := os.WriteFile(filepath.Join(dir, sessionFileName), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("corrupt file: %v", err)
	}

	if _, err := tracker.Current(ctx); !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("expected ErrCorruptStore in strict mode, got %v", err)
	}
}

func TestEstablish_OverwritesPreviousSession(t *testing.T) {
	tracker, _ := newTestTracker(t, false)
	ctx := context.Background()

	first := testUser()
	if err := tracker.Establish(ctx, first); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	second := models.UserRecord{ID: "other-id", Username: "Bob", FullName: "Bob B"}
	if err := tracker.Establish(ctx, second); err != nil {
		t.Fatalf("Establish error: %v", err)
	}

	session, err := tracker.Current(ctx)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if session.ID != "other-id" || session.Username != "Bob" {
		t.Errorf("expected the latest session to win, got %+v", session)
	}
}
