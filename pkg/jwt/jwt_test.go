package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "candidate@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "candidate@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	other := NewManager("different-secret", "refresh-secret", 15*time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "candidate@example.com")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredAccessToken(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "candidate@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(uuid.New(), "candidate@example.com")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(token)
	assert.Error(t, err)
}
