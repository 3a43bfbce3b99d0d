// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("abc123abc123abc", "amel@example.com", "client", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123abc123abc", claims.UserID)
	assert.Equal(t, "amel@example.com", claims.Email)
	assert.Equal(t, "client", claims.Role)
}

func TestJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	token, err := GenerateJWT("abc123abc123abc", "amel@example.com", "client", 1)
	require.NoError(t, err)

	SetJWTSecret("secret-b")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("abc123abc123abc", "amel@example.com", "client", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken("abc123abc123abc", 24)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123abc123abc", subject)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 12, 25)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(2, 12, 24)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPagination(1, 12, 0)
	assert.Equal(t, 0, p.TotalPages)
}
