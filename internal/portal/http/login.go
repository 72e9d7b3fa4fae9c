package http

import (
	"encoding/json"
	"net/http"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and mint a session token. Unknown email and wrong password return the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	portalsdk.SessionResponse	"session_token, user"
//	@Failure		401		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SessionResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.AuthService.Sessions.TTL().Seconds()),
		User:         toUserInfo(user),
	})
}
