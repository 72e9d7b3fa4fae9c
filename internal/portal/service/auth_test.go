package service

import (
	"context"
	"errors"
	"testing"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, token, err := env.auth.Register(ctx,
		"freya", "Freya@Example.com", "longenoughpw", "longenoughpw", domain.RoleFreelancer)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "freya@example.com", user.Email)
	require.Equal(t, domain.RoleFreelancer, user.Role)

	t.Run("login matches email case-insensitively", func(t *testing.T) {
		logged, token, err := env.auth.Login(ctx, "FREYA@example.COM", "longenoughpw")
		require.NoError(t, err)
		require.Equal(t, user.ID, logged.ID)

		claims, err := env.sessions.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, "freelancer", claims.Role)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, err := env.auth.Login(ctx, user.Email, "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = env.auth.Login(ctx, "nobody@example.com", "longenoughpw")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterAggregatesViolations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, _, err := env.auth.Register(ctx, "ab", "not-an-email", "short", "different", "manager")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 5)
}

func TestRegisterCountsUsernameCharacters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Two characters, four bytes: the length rule counts characters.
	_, _, err := env.auth.Register(ctx,
		"éé", "ee@example.com", "longenoughpw", "longenoughpw", domain.RoleClient)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	require.Equal(t, "username", verr.Violations[0].Field)
}

func TestRegisterRejectsTakenIdentifiers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)

	_, _, err := env.auth.Register(ctx,
		"freya", "freya@example.com", "longenoughpw", "longenoughpw", domain.RoleClient)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make(map[string]bool)
	for _, v := range verr.Violations {
		fields[v.Field] = true
	}
	require.True(t, fields["username"])
	require.True(t, fields["email"])
}
