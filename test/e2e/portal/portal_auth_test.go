package portal_test

import (
	"net/http"
	"testing"

	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin covers the signup and login roundtrip:
// 1. Register a freelancer account
// 2. Login with the same credentials
// 3. Use the session to reach an authenticated endpoint
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	session, user := registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	t.Logf("Registered freelancer %s", user.ID)

	loginResp, err := client.Login(t.Context(), portalsdk.LoginRequest{
		Email:    "freya@example.com",
		Password: defaultPassword,
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, loginResp.User.ID)
	require.NotEmpty(t, loginResp.SessionToken)

	projects, err := session.ListProjects(t.Context())
	require.NoError(t, err)
	require.Empty(t, projects.Projects)
}

// TestRegisterValidation verifies the full violation list comes back in one
// response.
func TestRegisterValidation(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	_, err := client.Register(t.Context(), portalsdk.RegisterRequest{
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
		Role:            "manager",
	})

	apiErr, ok := err.(*portalsdk.APIError)
	require.True(t, ok, "expected APIError, got: %v", err)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, portalsdk.ErrorCodeValidationFailed, apiErr.Code)
	require.Len(t, apiErr.Violations, 5)
}

// TestRegisterDuplicateEmail verifies a taken email is reported as a
// validation failure, not a server error.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	_, err := client.Register(t.Context(), portalsdk.RegisterRequest{
		Username:        "freya2",
		Email:           "freya@example.com",
		Password:        defaultPassword,
		PasswordConfirm: defaultPassword,
		Role:            "client",
	})
	assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeValidationFailed)
}

// TestLoginInvalidCredentials verifies bad passwords and unknown emails both
// come back as the same 401.
func TestLoginInvalidCredentials(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	registerAccount(t, client, "freya", "freya@example.com", "freelancer")

	_, err := client.Login(t.Context(), portalsdk.LoginRequest{
		Email:    "freya@example.com",
		Password: "wrong-password",
	})
	assertAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredential)

	_, err = client.Login(t.Context(), portalsdk.LoginRequest{
		Email:    "nobody@example.com",
		Password: defaultPassword,
	})
	assertAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeInvalidCredential)
}

// TestUnauthenticatedAccess verifies protected endpoints reject requests
// without a session.
func TestUnauthenticatedAccess(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	_, err := client.ListProjects(t.Context())
	assertAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeUnauthorized)
}
