package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/service"
	"github.com/klantsync/klantsync/pkg/httpx"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList godoc
//
//	@Summary		Dashboard Listing Endpoint
//	@Description	List the current user's projects, newest first. Freelancers see what they own, clients see what they are attached to.
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{object}	portalsdk.ProjectListResponse	"projects"
//	@Failure		401	{object}	portalsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.ProjectService.Dashboard(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectList(projects))
}

// HandleCreate godoc
//
//	@Summary		Project Creation Endpoint
//	@Description	Create a project (freelancers only). A client can be attached in the same call: client_id references an already-linked client, invite_email links a registered client directly or issues an invite pointing at the new project.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.ProjectRequest			true	"Project form"
//	@Success		201		{object}	portalsdk.ProjectCreateResponse		"project, invite or linked_client"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	result, err := h.ProjectService.CreateProject(ctx, httpx.UserIDFromCtx(ctx), service.ProjectInput{
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
		ClientID:    req.ClientID,
		InviteEmail: req.InviteEmail,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := portalsdk.ProjectCreateResponse{Project: toProjectResponse(result.Project)}
	if result.Issued != nil {
		if result.Issued.Linked {
			client := toUserInfo(result.Issued.Client)
			resp.LinkedClient = &client
		} else {
			invite := toInviteResponse(result.Issued.Invite, time.Now().UTC())
			resp.Invite = &invite
		}
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

// HandleGet godoc
//
//	@Summary		Project Detail Endpoint
//	@Description	Fetch a single project. Accessible to the owning freelancer and the attached client only.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string						true	"Project id"
//	@Success		200	{object}	portalsdk.ProjectResponse	"project"
//	@Failure		403	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	portalsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, err := h.ProjectService.GetProject(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleEdit godoc
//
//	@Summary		Project Edit Endpoint
//	@Description	Update a project's fields (owner only). Attaching an existing client through client_id links the pair first when no edge exists yet.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Project id"
//	@Param			request	body		portalsdk.ProjectRequest			true	"Project form"
//	@Success		200		{object}	portalsdk.ProjectResponse			"project"
//	@Failure		400		{object}	portalsdk.ValidationErrorResponse	"error, violations"
//	@Failure		403		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	portalsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portalsdk.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	project, err := h.ProjectService.EditProject(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.ProjectInput{
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
		Status:      domain.ProjectStatus(req.Status),
		ClientID:    req.ClientID,
		InviteEmail: req.InviteEmail,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleDelete godoc
//
//	@Summary		Project Deletion Endpoint
//	@Description	Delete a project and its updates (owner only). Invites that referenced the project survive with the reference cleared.
//	@Tags			Projects
//	@Param			id	path	string	true	"Project id"
//	@Success		204	"deleted"
//	@Failure		403	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ProjectService.DeleteProject(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
