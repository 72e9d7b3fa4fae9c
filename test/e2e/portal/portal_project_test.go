package portal_test

import (
	"net/http"
	"testing"

	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestProjectLifecycle covers create, edit, and delete as the owner.
func TestProjectLifecycle(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	project := createProject(t, freelancer, "Website redesign")
	require.Equal(t, "active", project.Status)

	edited, err := freelancer.EditProject(t.Context(), project.ID, portalsdk.ProjectRequest{
		Name:   "Website redesign v2",
		Status: "paused",
	})
	require.NoError(t, err)
	require.Equal(t, "Website redesign v2", edited.Name)
	require.Equal(t, "paused", edited.Status)

	require.NoError(t, freelancer.DeleteProject(t.Context(), project.ID))

	_, err = freelancer.GetProject(t.Context(), project.ID)
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}

// TestProjectAccessControl verifies project visibility boundaries between
// accounts.
func TestProjectAccessControl(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")
	outsider, _ := registerAccount(t, client, "otto", "otto@example.com", "client")

	project := createProject(t, freelancer, "Private work")

	_, err := outsider.GetProject(t.Context(), project.ID)
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)

	_, err = outsider.EditProject(t.Context(), project.ID, portalsdk.ProjectRequest{Name: "Hijack"})
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)

	err = outsider.DeleteProject(t.Context(), project.ID)
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)
}

// TestProjectUpdatesThread covers the status update thread shared between the
// freelancer and the attached client.
func TestProjectUpdatesThread(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	freelancer, _ := registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	// Bring in the client through the invite flow so the thread is shared
	created, err := freelancer.CreateProject(t.Context(), portalsdk.ProjectRequest{
		Name:        "Shared work",
		InviteEmail: "casper@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Invite)

	accepted, err := client.AcceptInvite(t.Context(), created.Invite.Token, portalsdk.AcceptRequest{
		Username:        "casper",
		Password:        defaultPassword,
		PasswordConfirm: defaultPassword,
	})
	require.NoError(t, err)
	clientSession := client.WithSession(accepted.SessionToken)

	// Both sides post
	_, err = freelancer.AddUpdate(t.Context(), created.Project.ID, portalsdk.UpdateRequest{
		Content: "Kickoff call done",
	})
	require.NoError(t, err)

	_, err = clientSession.AddUpdate(t.Context(), created.Project.ID, portalsdk.UpdateRequest{
		Content: "Looks great so far",
	})
	require.NoError(t, err)

	// Both sides read the same thread, newest first
	updates, err := clientSession.ListUpdates(t.Context(), created.Project.ID)
	require.NoError(t, err)
	require.Len(t, updates.Updates, 2)
	require.Equal(t, "Looks great so far", updates.Updates[0].Content)

	// An outsider can't read it
	outsider, _ := registerAccount(t, client, "otto", "otto@example.com", "client")
	_, err = outsider.ListUpdates(t.Context(), created.Project.ID)
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)
}

// TestClientCannotCreateProjects verifies project creation is freelancer-only.
func TestClientCannotCreateProjects(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	clientSession, _ := registerAccount(t, client, "casper", "casper@example.com", "client")

	_, err := clientSession.CreateProject(t.Context(), portalsdk.ProjectRequest{Name: "Nope"})
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)
}
