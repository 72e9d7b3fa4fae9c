package http

import (
	"net/http"

	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type ClientsHandler struct {
	RelationService *service.RelationService
}

// HandleList godoc
//
//	@Summary		Linked Clients Endpoint
//	@Description	List the freelancer's linked client accounts, newest link first. Feeds the existing-client picker on project forms.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{object}	portalsdk.ClientListResponse	"clients"
//	@Failure		401	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Failure		403	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.RelationService.ClientsForFreelancer(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.ClientListResponse{Clients: make([]portalsdk.UserInfo, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, toUserInfo(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
