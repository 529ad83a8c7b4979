package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rajatks/sevakart/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExpiry:  15,
		RefreshExpiry: 10080,
		Issuer:        "sevakart-test",
	}
}

func TestGeneratePair(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	pair, err := GeneratePair(userID, "919876543210", models.RoleCustomer, cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Greater(t, pair.RefreshExpiresAt, pair.AccessExpiresAt)

	// Access expiry is roughly now + 15 minutes
	expected := time.Now().Add(15 * time.Minute).Unix()
	assert.InDelta(t, expected, pair.AccessExpiresAt, 5)
}

func TestVerifyAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	pair, err := GeneratePair(userID, "919876543210", models.RoleProvider, cfg)
	require.NoError(t, err)

	claims, err := Verify(pair.AccessToken, cfg.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "919876543210", claims.Phone)
	assert.Equal(t, models.RoleProvider, claims.Role)
}

func TestVerifyRefreshToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	pair, err := GeneratePair(userID, "919876543210", models.RoleCustomer, cfg)
	require.NoError(t, err)

	claims, err := Verify(pair.RefreshToken, cfg.RefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestVerifyWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	pair, err := GeneratePair(uuid.New(), "919876543210", models.RoleCustomer, cfg)
	require.NoError(t, err)

	// An access token never verifies under the refresh secret and vice versa
	_, err = Verify(pair.AccessToken, cfg.RefreshSecret)
	assert.Error(t, err)

	_, err = Verify(pair.RefreshToken, cfg.AccessSecret)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiry = -1

	pair, err := GeneratePair(uuid.New(), "919876543210", models.RoleCustomer, cfg)
	require.NoError(t, err)

	_, err = Verify(pair.AccessToken, cfg.AccessSecret)
	assert.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	_, err := Verify("not-a-token", "whatever")
	assert.Error(t, err)
}
