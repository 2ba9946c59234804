package utils

import (
	"testing"
	"time"

	"esuka/config"
	"esuka/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testTokenManager() *TokenManager {
	return NewTokenManager(config.JWTConfig{
		SecretKey:       []byte("test-secret"),
		Issuer:          "e-suka-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func testUser() models.User {
	return models.User{
		Model:    gorm.Model{ID: 42},
		Email:    "sekban@bappeda.go.id",
		FullName: "Sekretaris",
		Role:     models.RoleUser,
		Jabatan:  models.JabatanSekretarisBadan,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testTokenManager()

	token, issued, err := m.GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := m.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.JabatanSekretarisBadan, claims.Jabatan)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	m := testTokenManager()

	refresh, _, err := m.GenerateRefreshToken(testUser())
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(refresh)
	assert.Error(t, err)

	_, err = m.VerifyRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	m := testTokenManager()

	a, _, err := m.GenerateRefreshToken(testUser())
	require.NoError(t, err)
	b, _, err := m.GenerateRefreshToken(testUser())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestExpiredAndForeignTokensRejected(t *testing.T) {
	m := testTokenManager()
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := m.GenerateAccessToken(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.VerifyAccessToken(token)
	assert.Error(t, err)

	other := NewTokenManager(config.JWTConfig{SecretKey: []byte("other"), Issuer: "e-suka-test", AccessTokenTTL: time.Hour})
	foreign, _, err := other.GenerateAccessToken(testUser())
	require.NoError(t, err)
	_, err = m.VerifyAccessToken(foreign)
	assert.Error(t, err)

	_, err = m.VerifyAccessToken("  ")
	assert.Error(t, err)
}
