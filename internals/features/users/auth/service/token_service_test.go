package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Now()
	token, err := CreateSessionToken(testSecret, "user-123", "Admin", "super_admin", now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "Admin", claims.UserName)
	assert.Equal(t, "super_admin", claims.Role)
	assert.WithinDuration(t, now.Add(SessionTTL), claims.ExpiresAt.Time, 2*time.Second)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := CreateSessionToken(testSecret, "user-123", "Admin", "super_admin", time.Now())
	require.NoError(t, err)

	_, err = ParseSessionToken("secret-lain", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Expired(t *testing.T) {
	// Terbit 25 jam lalu → sudah melewati TTL 24 jam.
	token, err := CreateSessionToken(testSecret, "user-123", "Admin", "super_admin", time.Now().Add(-25*time.Hour))
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "bukan.jwt.valid")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia-banget"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
}
