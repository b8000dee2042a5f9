package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "vendor", "access", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, "user", "access", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("secret-b"), "access", token)
	assert.Error(t, err)
}

func TestParseTokenWrongType(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 1, "user", "refresh", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 1, "user", "access", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestShouldRotateRefreshToken(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 1, "user", "access", 10*time.Second)
	require.NoError(t, err)
	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)

	assert.True(t, ShouldRotateRefreshToken(claims, 30*time.Second))
	assert.False(t, ShouldRotateRefreshToken(claims, time.Second))
}
