package portal_test

import (
	"net/http"
	"testing"

	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit verifies the strict limit on the login endpoint kicks in
// under production defaults. This is the only test that runs without the
// relaxed limits.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupPortalContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := portalsdk.NewClient(baseURL)

	limited := false
	for range 20 {
		_, err := client.Login(t.Context(), portalsdk.LoginRequest{
			Email:    "nobody@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)

		if apiErr, ok := err.(*portalsdk.APIError); ok &&
			apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	require.True(t, limited, "Login should be rate limited under production defaults")
}
