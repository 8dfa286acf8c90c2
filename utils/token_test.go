package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melaverse-glitch/Mirror-Dashboard/config"
)

func withJWTSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.JWTSecret
	config.JWTSecret = secret
	t.Cleanup(func() { config.JWTSecret = prev })
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	withJWTSecret(t, "test-secret")

	tokenString, err := GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateAdminToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
}

func TestGenerateAdminTokenWithoutSecret(t *testing.T) {
	withJWTSecret(t, "")

	_, err := GenerateAdminToken()
	assert.Error(t, err)
}

func TestValidateAdminTokenRejectsWrongSecret(t *testing.T) {
	withJWTSecret(t, "test-secret")
	tokenString, err := GenerateAdminToken()
	require.NoError(t, err)

	config.JWTSecret = "different-secret"
	token, err := ValidateAdminToken(tokenString)
	assert.Error(t, err)
	if token != nil {
		assert.False(t, token.Valid)
	}
}
