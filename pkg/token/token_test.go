package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenString, err := GenerateJWT(42, true, "test-secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, "test-secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.True(t, claims.IsOwner)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(42, false, "test-secret", 60)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "another-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	tokenString, err := GenerateJWT(42, false, "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "test-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", "test-secret")
	assert.Error(t, err)
}
