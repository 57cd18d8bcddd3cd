package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testClaims() Claims {
	return Claims{
		UserID: "8a5e7e3f-1111-2222-3333-444444444444",
		Name:   "Alice",
		Email:  "a@b.com",
		Phone:  "01712345678",
		Role:   "user",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, testClaims(), time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	want := testClaims()
	assert.Equal(t, want.UserID, parsed.UserID)
	assert.Equal(t, want.Name, parsed.Name)
	assert.Equal(t, want.Email, parsed.Email)
	assert.Equal(t, want.Phone, parsed.Phone)
	assert.Equal(t, want.Role, parsed.Role)
	assert.True(t, parsed.ExpiresAt.After(time.Now()))
}

func TestParseTokenFailures(t *testing.T) {
	token, err := GenerateToken(testSecret, testClaims(), time.Hour)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1][:len(parts[1])-2] + "xx." + parts[2]
		_, err := ParseToken(testSecret, tampered)
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := ParseToken(testSecret, "not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateToken(testSecret, testClaims(), -time.Minute)
		require.NoError(t, err)
		_, err = ParseToken(testSecret, expired)
		assert.Error(t, err)
	})
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
}
