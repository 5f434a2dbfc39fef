package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewService("super-secret", time.Hour)

	token, err := s.Issue("alice")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Usuario)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	require.Equal(t, time.Hour, ttl)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := NewService("secret", -1*time.Second)

	token, err := s.Issue("alice")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewService("right-secret", time.Hour).Issue("alice")
	require.NoError(t, err)

	_, err = NewService("wrong-secret", time.Hour).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewService("secret", time.Hour).Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
