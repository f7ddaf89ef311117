package auth

import (
	"testing"
	"time"

	"github.com/Vipul-2220/EventMate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken("secret", "u1", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewToken("secret", "u1", domain.RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = Parse("other", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := NewToken("secret", "u1", domain.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("secret", "not-a-token")
	assert.Error(t, err)
}
