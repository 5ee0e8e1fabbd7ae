package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradmap/internal/app/models"
)

func newTestTokens() *SessionTokens {
	return NewSessionTokens(SessionConfig{
		SecretKey: "secret",
		Lifetime:  time.Hour,
		Issuer:    "gradmap-test",
	})
}

func TestSessionTokensRoundTrip(t *testing.T) {
	tokens := newTestTokens()

	signed, err := tokens.Issue(models.Identity{Username: "alice", Email: "alice@x.com"})
	require.NoError(t, err)

	identity, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, "alice@x.com", identity.Email)
}

func TestSessionTokensRejectForeignSignature(t *testing.T) {
	other := NewSessionTokens(SessionConfig{SecretKey: "other", Lifetime: time.Hour, Issuer: "gradmap-test"})
	signed, err := other.Issue(models.Identity{Username: "mallory"})
	require.NoError(t, err)

	_, err = newTestTokens().Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokensExpire(t *testing.T) {
	tokens := newTestTokens()
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }

	signed, err := tokens.Issue(models.Identity{Username: "bob"})
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionTokensRejectEmpty(t *testing.T) {
	_, err := newTestTokens().Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
