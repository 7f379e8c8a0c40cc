package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tripweave/pkg/errors"
)

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	require.NoError(t, Init())

	access, refresh, expiresIn, err := GenerateTokenPair("42")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Greater(t, expiresIn, 0)

	uid, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "42", uid)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	require.NoError(t, Init())

	access, _, _, err := GenerateTokenPair("42")
	require.NoError(t, err)

	// access token 没有 type=refresh 声明
	_, err = ValidateRefreshToken(access)
	assert.ErrorIs(t, err, errors.ErrInvalidTokenType)
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	require.NoError(t, Init())

	_, err := ValidateRefreshToken("not-a-jwt")
	assert.Error(t, err)
}
