package http

import (
	"encoding/json"
	"net/http"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Account Registration Endpoint
//	@Description	Create a freelancer or client account. Validation errors are aggregated: every failed rule is reported in a single response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RegisterRequest			true	"Registration form"
//	@Success		201		{object}	portalsdk.SessionResponse			"session_token, user"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		500		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	user, token, err := h.AuthService.Register(ctx,
		req.Username, req.Email, req.Password, req.PasswordConfirm, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalsdk.SessionResponse{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.AuthService.Sessions.TTL().Seconds()),
		User:         toUserInfo(user),
	})
}
