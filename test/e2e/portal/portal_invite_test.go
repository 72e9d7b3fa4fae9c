package portal_test

import (
	"net/http"
	"testing"

	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteAcceptFlow covers the whole invite lifecycle:
// 1. A freelancer registers and creates a project with a client email
// 2. The invite link view shows the invited email
// 3. The recipient accepts, creating an account and a session
// 4. The new client sees the project on their dashboard
// 5. A replay of the same token fails
func TestInviteAcceptFlow(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	// Step 1: create a project inviting an unregistered email
	created, err := freelancer.CreateProject(t.Context(), portalsdk.ProjectRequest{
		Name:        "Website redesign",
		InviteEmail: "casper@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Invite, "Unknown email should yield an invite")
	require.Nil(t, created.LinkedClient)
	require.Equal(t, created.Project.ID, created.Invite.ProjectID)
	require.NotEmpty(t, created.Invite.Token)

	token := created.Invite.Token
	t.Logf("Invite issued for %s", created.Invite.Email)

	// Step 2: the public acceptance view
	view, err := client.InviteView(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, "casper@example.com", view.Email)
	require.Equal(t, "pending", view.Status)
	require.False(t, view.Expired)

	// Step 3: accept as a new user
	accepted, err := client.AcceptInvite(t.Context(), token, portalsdk.AcceptRequest{
		Username:        "casper",
		Password:        defaultPassword,
		PasswordConfirm: defaultPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "casper@example.com", accepted.User.Email)
	require.Equal(t, "client", accepted.User.Role)
	require.Equal(t, created.Project.ID, accepted.ProjectID)
	require.NotEmpty(t, accepted.SessionToken, "New accounts get a session")

	t.Logf("Invite accepted, new client %s", accepted.User.ID)

	// Step 4: the new client sees the project
	clientSession := client.WithSession(accepted.SessionToken)

	dashboard, err := clientSession.ListProjects(t.Context())
	require.NoError(t, err)
	require.Len(t, dashboard.Projects, 1)
	require.Equal(t, created.Project.ID, dashboard.Projects[0].ID)

	// Step 5: the token is spent
	_, err = client.AcceptInvite(t.Context(), token, portalsdk.AcceptRequest{
		Username:        "casper2",
		Password:        defaultPassword,
		PasswordConfirm: defaultPassword,
	})
	assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInviteUsed)

	// The freelancer's overview moved the invite to accepted
	overview, err := freelancer.ListInvites(t.Context())
	require.NoError(t, err)
	require.Empty(t, overview.Pending)
	require.Len(t, overview.Accepted, 1)
}

// TestInviteExistingClientLinksDirectly verifies that inviting a registered
// client skips the invite and links the accounts immediately.
func TestInviteExistingClientLinksDirectly(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")
	_, clientUser := registerAccount(t, client, "casper", "casper@example.com", "client")

	created, err := freelancer.CreateProject(t.Context(), portalsdk.ProjectRequest{
		Name:        "Migration",
		InviteEmail: "casper@example.com",
	})
	require.NoError(t, err)
	require.Nil(t, created.Invite)
	require.NotNil(t, created.LinkedClient)
	require.Equal(t, clientUser.ID, created.LinkedClient.ID)
	require.Equal(t, clientUser.ID, created.Project.ClientID)

	clients, err := freelancer.ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, clients.Clients, 1)
	require.Equal(t, clientUser.ID, clients.Clients[0].ID)
}

// TestInviteReissueReturnsSameToken verifies issuing twice for the same email
// hands back the original pending token.
func TestInviteReissueReturnsSameToken(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	first, err := freelancer.IssueInvite(t.Context(), portalsdk.InviteRequest{
		Email: "casper@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, first.Invite)

	second, err := freelancer.IssueInvite(t.Context(), portalsdk.InviteRequest{
		Email: "Casper@Example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, second.Invite)
	require.Equal(t, first.Invite.Token, second.Invite.Token)

	overview, err := freelancer.ListInvites(t.Context())
	require.NoError(t, err)
	require.Len(t, overview.Pending, 1)
}

// TestAcceptInviteWrongSession verifies an invite can't be accepted by a
// signed-in account with a different email.
func TestAcceptInviteWrongSession(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")
	otherSession, _ := registerAccount(t, client, "otto", "otto@example.com", "client")

	issued, err := freelancer.IssueInvite(t.Context(), portalsdk.InviteRequest{
		Email: "casper@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, issued.Invite)

	_, err = otherSession.AcceptInvite(t.Context(), issued.Invite.Token, portalsdk.AcceptRequest{})
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeEmailMismatch)

	// The invite is still pending for its real recipient
	view, err := client.InviteView(t.Context(), issued.Invite.Token)
	require.NoError(t, err)
	require.Equal(t, "pending", view.Status)
}

// TestIssueInviteRequiresFreelancer verifies clients can't mint invites.
func TestIssueInviteRequiresFreelancer(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	clientSession, _ := registerAccount(t, client, "casper", "casper@example.com", "client")

	_, err := clientSession.IssueInvite(t.Context(), portalsdk.InviteRequest{
		Email: "someone@example.com",
	})
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)
}

// TestInviteUnknownToken verifies the acceptance view 404s on garbage tokens.
func TestInviteUnknownToken(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	_, err := client.InviteView(t.Context(), "no-such-token")
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}
