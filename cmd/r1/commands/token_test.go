package commands

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavelabs-io/ruckusone/internal/constants"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestDecodeJWTExpiration(t *testing.T) {
	t.Run("extracts expiration claim", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signedToken(t, jwt.MapClaims{"exp": expiry.Unix()})

		decoded, err := decodeJWTExpiration(token)
		require.NoError(t, err)
		assert.True(t, expiry.Equal(*decoded))
	})

	t.Run("rejects token without expiration claim", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "someone"})

		_, err := decodeJWTExpiration(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, constants.ErrNoExpirationClaim)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := decodeJWTExpiration("not-a-jwt")
		require.Error(t, err)
		assert.ErrorIs(t, err, constants.ErrInvalidJWTFormat)
	})
}

func TestBuildTokenStatusData(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		status := buildTokenStatusData(&Config{Region: "eu"})

		assert.Equal(t, false, status["authenticated"])
		assert.Equal(t, "No token", status["status"])
		assert.Equal(t, "https://api.eu.ruckus.cloud", status["endpoint"])
	})

	t.Run("valid token with stored expiry", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour)
		status := buildTokenStatusData(&Config{
			Region:         "na",
			Token:          "opaque-token",
			TokenExpiresAt: &expiry,
		})

		assert.Equal(t, true, status["authenticated"])
		assert.Equal(t, "Valid", status["expiry_status"])
	})

	t.Run("expiring token", func(t *testing.T) {
		expiry := time.Now().Add(time.Minute)
		status := buildTokenStatusData(&Config{
			Region:         "na",
			Token:          "opaque-token",
			TokenExpiresAt: &expiry,
		})

		assert.Equal(t, "Expires soon", status["expiry_status"])
	})

	t.Run("expired token", func(t *testing.T) {
		expiry := time.Now().Add(-time.Minute)
		status := buildTokenStatusData(&Config{
			Region:         "na",
			Token:          "opaque-token",
			TokenExpiresAt: &expiry,
		})

		assert.Equal(t, "Expired", status["expiry_status"])
	})

	t.Run("falls back to JWT claims for expiry", func(t *testing.T) {
		expiry := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		token := signedToken(t, jwt.MapClaims{"exp": expiry.Unix()})

		status := buildTokenStatusData(&Config{Region: "na", Token: token})

		assert.Equal(t, "Valid", status["expiry_status"])
		assert.Equal(t, expiry.Format(time.RFC3339), status["expires_at"])
	})
}
