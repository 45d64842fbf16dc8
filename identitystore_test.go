package identitystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) Service {
	t.Helper()
	svc, err := Open(Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	return svc
}

func TestOpen_RequiresDataDir(t *testing.T) {
	_, err := Open(Options{})
	require.Error(t, err)
}

// TestScenario_AliceLifecycle walks the full account lifecycle through the
// public boundary: create, authenticate both ways, reject a weak password
// change, delete case-insensitively, and confirm the account is gone.
func TestScenario_AliceLifecycle(t *testing.T) {
	svc := openTestStore(t)
	ctx := context.Background()

	created := svc.CreateUser(ctx, "Alice", "pass1234", "Alice A")
	require.True(t, created.OK, created.Message)
	require.NotEmpty(t, created.UserID)

	login := svc.Login(ctx, "alice", "pass1234")
	require.True(t, login.OK, login.Message)
	require.NotNil(t, login.User)
	assert.Equal(t, created.UserID, login.User.ID)

	wrong := svc.Login(ctx, "alice", "wrong")
	require.False(t, wrong.OK)
	assert.Nil(t, wrong.User)

	weak := svc.ChangePassword(ctx, "Alice", "pass1234", "ab")
	require.False(t, weak.OK)

	deleted := svc.DeleteUser(ctx, "ALICE")
	require.True(t, deleted.OK, deleted.Message)

	gone := svc.Login(ctx, "alice", "pass1234")
	require.False(t, gone.OK)
	// a deleted account and a wrong password must be indistinguishable
	assert.Equal(t, wrong.Message, gone.Message)
}

func TestSession_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := Open(Options{DataDir: dir})
	require.NoError(t, err)

	require.True(t, svc.CreateUser(ctx, "alice", "pass1234", "Alice A").OK)
	require.True(t, svc.Login(ctx, "alice", "pass1234").OK)

	// a fresh handle on the same directory simulates a process restart
	reopened, err := Open(Options{DataDir: dir})
	require.NoError(t, err)

	current := reopened.GetCurrentUser(ctx)
	require.True(t, current.OK)
	require.NotNil(t, current.Session)
	assert.Equal(t, "alice", current.Session.Username)
	assert.Equal(t, "Alice A", current.Session.FullName)

	require.True(t, reopened.Logout(ctx).OK)

	cleared := reopened.GetCurrentUser(ctx)
	require.True(t, cleared.OK)
	assert.Nil(t, cleared.Session)
}

func TestLogout_WithoutSessionSucceeds(t *testing.T) {
	svc := openTestStore(t)

	res := svc.Logout(context.Background())
	require.True(t, res.OK)
}

func TestGetAllUsers_NeverExposesCredentials(t *testing.T) {
	svc := openTestStore(t)
	ctx := context.Background()

	require.True(t, svc.CreateUser(ctx, "alice", "pass1234", "Alice A").OK)
	require.True(t, svc.CreateUser(ctx, "Bob", "hunter22", "").OK)

	res := svc.GetAllUsers(ctx)
	require.True(t, res.OK)
	require.Len(t, res.Users, 2)
	for _, user := range res.Users {
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.Username)
	}
}

func TestChangePassword_EndToEnd(t *testing.T) {
	svc := openTestStore(t)
	ctx := context.Background()

	require.True(t, svc.CreateUser(ctx, "alice", "oldpass1", "").OK)

	changed := svc.ChangePassword(ctx, "alice", "oldpass1", "newpass1")
	require.True(t, changed.OK, changed.Message)

	require.False(t, svc.Login(ctx, "alice", "oldpass1").OK)
	require.True(t, svc.Login(ctx, "alice", "newpass1").OK)
}

func TestOpen_IndependentDirectoriesAreIsolated(t *testing.T) {
	ctx := context.Background()

	first, err := Open(Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	second, err := Open(Options{DataDir: t.TempDir()})
	require.NoError(t, err)

	require.True(t, first.CreateUser(ctx, "alice", "pass1234", "").OK)

	// the same username is free in an unrelated store
	require.True(t, second.CreateUser(ctx, "alice", "pass1234", "").OK)
	require.False(t, second.Login(ctx, "bob", "pass1234").OK)
}
