package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(&config.AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour})
	raw, err := svc.Issue("user-1", "sara@example.com")
	require.NoError(t, err)

	claims, err := svc.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "sara@example.com", claims.Email)
}

func TestTokenRejectsOtherSecretAndExpiry(t *testing.T) {
	raw, err := NewTokenService(&config.AuthConfig{JWTSecret: "a", TokenTTL: time.Hour}).Issue("u", "e")
	require.NoError(t, err)
	_, err = NewTokenService(&config.AuthConfig{JWTSecret: "b", TokenTTL: time.Hour}).Parse(raw)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired, err := NewTokenService(&config.AuthConfig{JWTSecret: "a", TokenTTL: -time.Minute}).Issue("u", "e")
	require.NoError(t, err)
	_, err = NewTokenService(&config.AuthConfig{JWTSecret: "a", TokenTTL: time.Hour}).Parse(expired)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
