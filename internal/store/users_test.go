package store

import (
	"context"
	"testing"

	"github.com/labkeep-dev/labkeep/internal/auth"
	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_RegisterThenAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	created, err := users.Register(ctx, "alice", "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NotEqual(t, "password1", created.PasswordHash)

	got, err := users.Authenticate(ctx, "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestUserStore_AuthenticateFailsGenerically(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	_, err := users.Register(ctx, "alice", "a@x.com", "password1")
	require.NoError(t, err)

	// Wrong password and unknown username yield the same error.
	_, err = users.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "nobody-here", "password1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUserStore_DuplicateSignupLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserStore(gormDB)

	_, err := users.Register(ctx, "alice", "a@x.com", "password1")
	require.NoError(t, err)
	require.EqualValues(t, 1, countRows[models.User](t, gormDB))

	_, err = users.Register(ctx, "alice", "other@x.com", "password1")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = users.Register(ctx, "bob12", "a@x.com", "password1")
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.EqualValues(t, 1, countRows[models.User](t, gormDB))
}

func TestUserStore_ValidatesSignupInput(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"username too short", "al", "a@x.com", "password1"},
		{"username too long", "a-very-long-username", "a@x.com", "password1"},
		{"malformed email", "alice", "not-an-email", "password1"},
		{"password too short", "alice", "a@x.com", "short"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Register(ctx, tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserStore_FindByID(t *testing.T) {
	ctx := context.Background()
	users := NewUserStore(newTestDB(t))

	created, err := users.Register(ctx, "alice", "a@x.com", "password1")
	require.NoError(t, err)

	got, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = users.FindByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserStore(gormDB)

	require.NoError(t, users.EnsureAdmin(ctx, "root", "root@x.com", "admin-password"))

	admin, err := users.Authenticate(ctx, "root", "admin-password")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Idempotent on restart.
	require.NoError(t, users.EnsureAdmin(ctx, "root", "root@x.com", "admin-password"))
	assert.EqualValues(t, 1, countRows[models.User](t, gormDB))
}
