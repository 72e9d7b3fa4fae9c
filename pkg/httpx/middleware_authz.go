package httpx

import "net/http"

// RequireRole gates a handler on the session's role claim. The role set is
// closed (freelancer | client), so a single required role is always enough.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromCtx(r.Context()) != role {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "forbidden",
					"error_description": "This operation requires the " + role + " role",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
