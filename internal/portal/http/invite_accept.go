package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
	"github.com/klantsync/klantsync/pkg/sessionx"
)

type InviteAcceptHandler struct {
	InviteService *service.InviteService
	Sessions      *sessionx.Manager
}

// HandleView godoc
//
//	@Summary		Invite Acceptance View Endpoint
//	@Description	Public lookup behind an invite link. Returns the invite's email and state so the acceptance form can be pre-filled. Never mutates the invite.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string						true	"Invite token"
//	@Success		200		{object}	portalsdk.AcceptViewResponse	"email, status, expired"
//	@Failure		404		{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/accept/{token} [get].
func (h *InviteAcceptHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invite, err := h.InviteService.LookupInvite(ctx, r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.AcceptViewResponse{
		Email:     invite.Email,
		Status:    string(invite.Status),
		Expired:   invite.Expired(time.Now().UTC()),
		ExpiresAt: invite.ExpiresAt,
	})
}

// HandleAccept godoc
//
//	@Summary		Invite Acceptance Endpoint
//	@Description	Accept an invite. With a valid client session whose email matches the invite, the body is ignored and the existing account is linked. Without a session the body must carry a registration form; a client account is created and a session token returned. Linking, project attachment, and the status flip happen atomically.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string								true	"Invite token"
//	@Param			request	body		portalsdk.AcceptRequest				false	"Registration form (anonymous path only)"
//	@Success		200		{object}	portalsdk.AcceptResponse			"user, project_id, session_token"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invites/accept/{token} [post].
func (h *InviteAcceptHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeInvalidJSON(w)
		return
	}

	params := service.AcceptParams{
		Token:           r.PathValue("token"),
		UserID:          httpx.UserIDFromCtx(ctx),
		Email:           httpx.EmailFromCtx(ctx),
		Role:            domain.Role(httpx.RoleFromCtx(ctx)),
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}

	result, err := h.InviteService.AcceptInvite(ctx, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.AcceptResponse{
		User:      toUserInfo(result.User),
		ProjectID: result.ProjectID,
	}
	if result.SessionToken != "" {
		resp.SessionToken = result.SessionToken
		resp.TokenType = "Bearer"
		resp.ExpiresIn = int(h.Sessions.TTL().Seconds())
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
