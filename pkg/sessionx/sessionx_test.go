package sessionx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMintAndVerify(t *testing.T) {
	t.Parallel()

	m, err := NewManager("klantsync", time.Hour)
	require.NoError(t, err)

	token, err := m.Mint("user-1", "carol@x.test", "carol", "client", time.Now())
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "carol@x.test", claims.Email)
	require.Equal(t, "client", claims.Role)
	require.Equal(t, "carol", claims.Username)
}

func TestVerifyRejectsExpiredTokens(t *testing.T) {
	t.Parallel()

	m, err := NewManager("klantsync", time.Minute)
	require.NoError(t, err)

	token, err := m.Mint("user-1", "c@x.test", "c", "client", time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	t.Parallel()

	a, err := NewManager("klantsync", time.Hour)
	require.NoError(t, err)
	b, err := NewManager("klantsync", time.Hour)
	require.NoError(t, err)

	token, err := a.Mint("user-1", "c@x.test", "c", "client", time.Now())
	require.NoError(t, err)

	// Signed by a different keypair.
	_, err = b.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	m, err := NewManager("klantsync", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidSession)
}
