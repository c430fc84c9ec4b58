package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/hsm-gustavo/smart-pantry/internal/common"
	"github.com/hsm-gustavo/smart-pantry/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServiceAt(t *testing.T, now time.Time) *TokenService {
	t.Helper()
	s := NewTokenService("super-secret", DefaultTokenTTL)
	s.now = func() time.Time { return now }
	return s
}

func TestIssueAndVerify_Success(t *testing.T) {
	now := time.Now()
	s := newTokenServiceAt(t, now)

	tok, err := s.Issue("user-123", "joao@example.com", db.RoleAdmin)
	require.NoError(t, err)

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "joao@example.com", claims.Email)
	assert.Equal(t, db.RoleAdmin, claims.Role)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestVerify_ExpiredAfterSevenDays(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTokenServiceAt(t, issued)

	tok, err := s.Issue("u1", "a@example.com", db.RoleUser)
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Second) }
	_, err = s.Verify(tok)
	assert.NoError(t, err, "still valid one second before expiry")

	s.now = func() time.Time { return issued.Add(7 * 24 * time.Hour) }
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "rejected exactly at expiry")

	s.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
	_, err = s.Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TamperedSignature(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	tok, err := s.Issue("u1", "a@example.com", db.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = s.Verify(tampered)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	tok, err := s.Issue("u1", "a@example.com", db.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"role":"user"`, `"role":"admin"`, 1)
	require.NotEqual(t, string(payload), forged)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	_, err = s.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewTokenService("right-secret", time.Hour).Issue("u2", "b@example.com", db.RoleUser)
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	s := NewTokenService("k", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := s.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTokenTTL, NewTokenService("k", 0).TTL())
}
