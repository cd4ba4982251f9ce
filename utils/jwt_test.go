package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken(42, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAdminToken(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.AdminID)
}

func TestAdminTokenWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(1, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "other-secret")
	assert.Error(t, err)
}

func TestAdminTokenExpired(t *testing.T) {
	token, err := GenerateAdminToken(1, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
