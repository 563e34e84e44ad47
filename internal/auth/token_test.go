package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerudungstore/backend/internal/models"
)

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)

	token, err := tg.GenerateToken(42, "alice", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := tg.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestTokenGenerator_ValidateToken_WrongSecret(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)
	other := NewTokenGenerator("other-secret", time.Hour)

	token, err := tg.GenerateToken(1, "alice", models.RoleUser)
	require.NoError(t, err)

	session, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestTokenGenerator_ValidateToken_Expired(t *testing.T) {
	tg := NewTokenGenerator("test-secret", -time.Minute)

	token, err := tg.GenerateToken(1, "alice", models.RoleUser)
	require.NoError(t, err)

	session, err := tg.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestTokenGenerator_ValidateToken_Garbage(t *testing.T) {
	tg := NewTokenGenerator("test-secret", time.Hour)

	session, err := tg.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestTokenGenerator_Expiry(t *testing.T) {
	tg := NewTokenGenerator("test-secret", 24*time.Hour)

	assert.Equal(t, 24*time.Hour, tg.Expiry())
}
