package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleList godoc
//
//	@Summary		Invite Overview Endpoint
//	@Description	List the freelancer's invites: every pending one plus the ten most recently accepted, newest first.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	portalsdk.InviteListResponse	"pending, accepted"
//	@Failure		401	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InvitesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	overview, err := h.InviteService.ListInvites(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	now := time.Now().UTC()
	resp := portalsdk.InviteListResponse{
		Pending:  make([]portalsdk.InviteResponse, 0, len(overview.Pending)),
		Accepted: make([]portalsdk.InviteResponse, 0, len(overview.Accepted)),
	}
	for _, inv := range overview.Pending {
		resp.Pending = append(resp.Pending, toInviteResponse(inv, now))
	}
	for _, inv := range overview.Accepted {
		resp.Accepted = append(resp.Accepted, toInviteResponse(inv, now))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleIssue godoc
//
//	@Summary		Invite Issuance Endpoint
//	@Description	Issue a client invitation, optionally tied to a project. Re-issuing for an email with a pending invite returns the original token; when the project reference differs it is repointed, last write wins. An email already registered as a client is linked directly and no invite is created.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.InviteRequest				true	"Invite request"
//	@Success		200		{object}	portalsdk.IssueInviteResponse		"invite or linked_client"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InvitesHandler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	result, err := h.InviteService.IssueInvite(ctx, httpx.UserIDFromCtx(ctx), req.Email, req.ProjectID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var resp portalsdk.IssueInviteResponse
	if result.Linked {
		client := toUserInfo(result.Client)
		resp.LinkedClient = &client
	} else {
		invite := toInviteResponse(result.Invite, time.Now().UTC())
		resp.Invite = &invite
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
