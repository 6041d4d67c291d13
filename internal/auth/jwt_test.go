package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testUser() models.User {
	u := models.User{
		Username: "alice",
		Role:     models.RoleAdmin,
	}
	u.ID = 42
	return u
}

func TestNewService_RejectsWeakSecrets(t *testing.T) {
	_, err := NewService("")
	assert.ErrorIs(t, err, ErrEmptySecretKey)

	_, err = NewService("short")
	assert.ErrorIs(t, err, ErrWeakSecretKey)
}

func TestService_IssueAndVerify(t *testing.T) {
	s, err := NewService(testSecret)
	require.NoError(t, err)

	token, ttl, err := s.Issue(testUser(), false)
	require.NoError(t, err)
	assert.Equal(t, SessionTTL, ttl)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestService_RememberExtendsLifetime(t *testing.T) {
	s, err := NewService(testSecret)
	require.NoError(t, err)

	token, ttl, err := s.Issue(testUser(), true)
	require.NoError(t, err)
	assert.Equal(t, RememberTTL, ttl)

	claims, err := s.Verify(token)
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, SessionTTL)
}

func TestService_RejectsForgedAndMalformedTokens(t *testing.T) {
	s, err := NewService(testSecret)
	require.NoError(t, err)

	other, err := NewService(strings.Repeat("x", 32))
	require.NoError(t, err)

	forged, _, err := other.Issue(testUser(), false)
	require.NoError(t, err)

	_, err = s.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	assert.True(t, CheckPassword(hash, "password1"))
	assert.False(t, CheckPassword(hash, "password2"))
}
