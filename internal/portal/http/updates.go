package http

import (
	"encoding/json"
	"net/http"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type UpdatesHandler struct {
	UpdateService *service.UpdateService
}

// HandleList godoc
//
//	@Summary		Update Listing Endpoint
//	@Description	List a project's status updates, newest first. Access is gated the same way as the project detail.
//	@Tags			Updates
//	@Produce		json
//	@Param			id	path		string							true	"Project id"
//	@Success		200	{object}	portalsdk.UpdateListResponse	"updates"
//	@Failure		403	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/updates [get].
func (h *UpdatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updates, err := h.UpdateService.ListUpdates(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.UpdateListResponse{Updates: make([]portalsdk.UpdateResponse, 0, len(updates))}
	for _, u := range updates {
		resp.Updates = append(resp.Updates, toUpdateResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandlePost godoc
//
//	@Summary		Update Posting Endpoint
//	@Description	Post a status update on a project. The author must be the owning freelancer or the attached client.
//	@Tags			Updates
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Project id"
//	@Param			request	body		portalsdk.UpdateRequest				true	"Update content"
//	@Success		201		{object}	portalsdk.UpdateResponse			"update"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id}/updates [post].
func (h *UpdatesHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	update, err := h.UpdateService.AddUpdate(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUpdateResponse(update))
}
