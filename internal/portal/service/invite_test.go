package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/stretchr/testify/require"
)

func TestIssueInviteReusesPendingToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	projectA := env.createProject(t, freelancer.ID, "Website redesign")
	projectB := env.createProject(t, freelancer.ID, "Brand refresh")

	first, err := env.invites.IssueInvite(ctx, freelancer.ID, "Client@Example.com", projectA.ID)
	require.NoError(t, err)
	require.False(t, first.Linked)
	require.NotEmpty(t, first.Invite.Token)
	require.Equal(t, "client@example.com", first.Invite.Email)
	require.Equal(t, projectA.ID, first.Invite.ProjectID)

	t.Run("second issue returns the original token", func(t *testing.T) {
		second, err := env.invites.IssueInvite(ctx, freelancer.ID, "client@example.com", projectB.ID)
		require.NoError(t, err)
		require.Equal(t, first.Invite.ID, second.Invite.ID)
		require.Equal(t, first.Invite.Token, second.Invite.Token)
	})

	t.Run("project reference is repointed, last write wins", func(t *testing.T) {
		stored, err := env.store.Invites().GetInviteByToken(ctx, first.Invite.Token)
		require.NoError(t, err)
		require.Equal(t, projectB.ID, stored.ProjectID)
	})

	t.Run("only one pending invite exists for the pair", func(t *testing.T) {
		overview, err := env.invites.ListInvites(ctx, freelancer.ID)
		require.NoError(t, err)
		require.Len(t, overview.Pending, 1)
	})
}

func TestIssueInviteLinksExistingClientDirectly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	client := env.createUser(t, "casper", "casper@example.com", domain.RoleClient)
	project := env.createProject(t, freelancer.ID, "Logo design")

	result, err := env.invites.IssueInvite(ctx, freelancer.ID, client.Email, project.ID)
	require.NoError(t, err)
	require.True(t, result.Linked)
	require.Equal(t, client.ID, result.Client.ID)

	rel, err := env.store.Relations().GetRelation(ctx, client.ID, freelancer.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, rel.ClientID)

	stored, err := env.store.Projects().GetProjectByID(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, stored.ClientID)

	// No invite row was written.
	_, err = env.store.Invites().GetPendingInvite(ctx, client.Email, freelancer.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIssueInviteLinkIsAtomicAndIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	client := env.createUser(t, "casper", "casper@example.com", domain.RoleClient)
	project := env.createProject(t, freelancer.ID, "Logo design")

	// A pre-existing edge is reused, not duplicated, and the attachment
	// still lands in the same call.
	_, err := env.relations.Link(ctx, client.ID, freelancer.ID)
	require.NoError(t, err)

	result, err := env.invites.IssueInvite(ctx, freelancer.ID, client.Email, project.ID)
	require.NoError(t, err)
	require.True(t, result.Linked)

	rels, err := env.store.Relations().ListRelationsByFreelancer(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, rels, 1)

	stored, err := env.store.Projects().GetProjectByID(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, client.ID, stored.ClientID)
}

func TestAcceptInviteCountsUsernameCharacters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	invite := env.createPendingInvite(t, "new@example.com", freelancer.ID, "")

	// Two characters, four bytes: the length rule counts characters.
	_, err := env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           invite.Token,
		Username:        "éé",
		Password:        "longenoughpw",
		PasswordConfirm: "longenoughpw",
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	require.Equal(t, "username", verr.Violations[0].Field)
}

func TestIssueInviteRejectsFreelancerEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	other := env.createUser(t, "otto", "otto@example.com", domain.RoleFreelancer)

	_, err := env.invites.IssueInvite(ctx, freelancer.ID, other.Email, "")
	require.ErrorIs(t, err, ErrEmailIsFreelancer)
}

func TestIssueInviteRejectsForeignProject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	other := env.createUser(t, "otto", "otto@example.com", domain.RoleFreelancer)
	project := env.createProject(t, other.ID, "Not yours")

	_, err := env.invites.IssueInvite(ctx, freelancer.ID, "client@example.com", project.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestAcceptInviteCreatesAccountAndLinks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	project := env.createProject(t, freelancer.ID, "Website redesign")

	issued, err := env.invites.IssueInvite(ctx, freelancer.ID, "newclient@example.com", project.ID)
	require.NoError(t, err)

	result, err := env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           issued.Invite.Token,
		Username:        "newclient",
		Password:        "longenoughpw",
		PasswordConfirm: "longenoughpw",
	})
	require.NoError(t, err)

	t.Run("client account created with the invite email", func(t *testing.T) {
		require.Equal(t, domain.RoleClient, result.User.Role)
		require.Equal(t, "newclient@example.com", result.User.Email)
		require.NotEmpty(t, result.SessionToken)

		claims, err := env.sessions.Verify(result.SessionToken)
		require.NoError(t, err)
		require.Equal(t, result.User.ID, claims.Subject)
	})

	t.Run("edge and project attachment landed", func(t *testing.T) {
		_, err := env.store.Relations().GetRelation(ctx, result.User.ID, freelancer.ID)
		require.NoError(t, err)

		stored, err := env.store.Projects().GetProjectByID(ctx, project.ID)
		require.NoError(t, err)
		require.Equal(t, result.User.ID, stored.ClientID)
		require.Equal(t, project.ID, result.ProjectID)
	})

	t.Run("invite is terminal", func(t *testing.T) {
		stored, err := env.store.Invites().GetInviteByToken(ctx, issued.Invite.Token)
		require.NoError(t, err)
		require.Equal(t, domain.InviteAccepted, stored.Status)
	})

	t.Run("replay fails without extra mutations", func(t *testing.T) {
		_, err := env.invites.AcceptInvite(ctx, AcceptParams{
			Token:           issued.Invite.Token,
			Username:        "replayer",
			Password:        "longenoughpw",
			PasswordConfirm: "longenoughpw",
		})
		require.ErrorIs(t, err, ErrInviteAlreadyUsed)

		// No account was created for the replay attempt.
		_, err = env.store.Users().GetUserByUsername(ctx, "replayer")
		require.ErrorIs(t, err, store.ErrNotFound)

		rels, err := env.store.Relations().ListRelationsByFreelancer(ctx, freelancer.ID)
		require.NoError(t, err)
		require.Len(t, rels, 1)
	})
}

func TestAcceptInviteAuthenticatedClient(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	client := env.createUser(t, "casper", "casper@example.com", domain.RoleClient)
	project := env.createProject(t, freelancer.ID, "Logo design")
	invite := env.createPendingInvite(t, client.Email, freelancer.ID, project.ID)

	t.Run("matching session links without a new session token", func(t *testing.T) {
		result, err := env.invites.AcceptInvite(ctx, AcceptParams{
			Token:  invite.Token,
			UserID: client.ID,
			Email:  client.Email,
			Role:   domain.RoleClient,
		})
		require.NoError(t, err)
		require.Equal(t, client.ID, result.User.ID)
		require.Empty(t, result.SessionToken)

		_, err = env.store.Relations().GetRelation(ctx, client.ID, freelancer.ID)
		require.NoError(t, err)
	})
}

func TestAcceptInviteSessionMismatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	client := env.createUser(t, "casper", "casper@example.com", domain.RoleClient)
	invite := env.createPendingInvite(t, "someoneelse@example.com", freelancer.ID, "")

	t.Run("wrong email is rejected", func(t *testing.T) {
		_, err := env.invites.AcceptInvite(ctx, AcceptParams{
			Token:  invite.Token,
			UserID: client.ID,
			Email:  client.Email,
			Role:   domain.RoleClient,
		})
		require.ErrorIs(t, err, ErrEmailMismatch)
	})

	t.Run("freelancer session is rejected", func(t *testing.T) {
		_, err := env.invites.AcceptInvite(ctx, AcceptParams{
			Token:  invite.Token,
			UserID: freelancer.ID,
			Email:  freelancer.Email,
			Role:   domain.RoleFreelancer,
		})
		require.ErrorIs(t, err, ErrNotClientAccount)
	})

	t.Run("invite stayed pending", func(t *testing.T) {
		stored, err := env.store.Invites().GetInviteByToken(ctx, invite.Token)
		require.NoError(t, err)
		require.Equal(t, domain.InvitePending, stored.Status)
	})
}

func TestAcceptInviteExpired(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	invite := env.createExpiredInvite(t, "late@example.com", freelancer.ID, "")

	_, err := env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           invite.Token,
		Username:        "latecomer",
		Password:        "longenoughpw",
		PasswordConfirm: "longenoughpw",
	})
	require.ErrorIs(t, err, ErrInviteExpired)

	// The expired row stays pending; no sweep, no account, no edge.
	stored, err := env.store.Invites().GetInviteByToken(ctx, invite.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitePending, stored.Status)

	_, err = env.store.Users().GetUserByUsername(ctx, "latecomer")
	require.ErrorIs(t, err, store.ErrNotFound)

	rels, err := env.store.Relations().ListRelationsByFreelancer(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Empty(t, rels)
}

func TestAcceptInviteUnknownToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.invites.AcceptInvite(ctx, AcceptParams{Token: "no-such-token"})
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestAcceptInviteAggregatesFormViolations(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	// The invite email already has an account, which is one more violation.
	env.createUser(t, "casper", "casper@example.com", domain.RoleClient)
	invite := env.createPendingInvite(t, "casper@example.com", freelancer.ID, "")

	_, err := env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           invite.Token,
		Username:        "ab",        // too short
		Password:        "short",     // too short
		PasswordConfirm: "different", // mismatch
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 4)

	fields := make(map[string]int)
	for _, v := range verr.Violations {
		fields[v.Field]++
	}
	require.Equal(t, 1, fields["username"])
	require.Equal(t, 1, fields["password"])
	require.Equal(t, 1, fields["password_confirm"])
	require.Equal(t, 1, fields["email"])
}

func TestAcceptInviteSurvivesVanishedProject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	project := env.createProject(t, freelancer.ID, "Doomed project")

	issued, err := env.invites.IssueInvite(ctx, freelancer.ID, "client@example.com", project.ID)
	require.NoError(t, err)

	require.NoError(t, env.store.Projects().DeleteProject(ctx, project.ID))

	result, err := env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           issued.Invite.Token,
		Username:        "survivor",
		Password:        "longenoughpw",
		PasswordConfirm: "longenoughpw",
	})
	require.NoError(t, err)
	require.Empty(t, result.ProjectID)

	_, err = env.store.Relations().GetRelation(ctx, result.User.ID, freelancer.ID)
	require.NoError(t, err)
}

func TestLookupInviteDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)
	invite := env.createExpiredInvite(t, "late@example.com", freelancer.ID, "")

	found, err := env.invites.LookupInvite(ctx, invite.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitePending, found.Status)
	require.True(t, found.Expired(time.Now().UTC()))

	_, err = env.invites.LookupInvite(ctx, "missing")
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestListInvitesSplitsPendingAndAccepted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	freelancer := env.createUser(t, "freya", "freya@example.com", domain.RoleFreelancer)

	for i := 0; i < 3; i++ {
		_, err := env.invites.IssueInvite(ctx, freelancer.ID, pendingEmail(i), "")
		require.NoError(t, err)
	}

	issued, err := env.invites.IssueInvite(ctx, freelancer.ID, "done@example.com", "")
	require.NoError(t, err)
	_, err = env.invites.AcceptInvite(ctx, AcceptParams{
		Token:           issued.Invite.Token,
		Username:        "doneclient",
		Password:        "longenoughpw",
		PasswordConfirm: "longenoughpw",
	})
	require.NoError(t, err)

	overview, err := env.invites.ListInvites(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, overview.Pending, 3)
	require.Len(t, overview.Accepted, 1)
	require.Equal(t, "done@example.com", overview.Accepted[0].Email)
}

func pendingEmail(i int) string {
	return string(rune('a'+i)) + "-pending@example.com"
}
