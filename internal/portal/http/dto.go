package http

import (
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/pkg/portalsdk"
)

func toUserInfo(u domain.User) portalsdk.UserInfo {
	return portalsdk.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func toProjectResponse(p domain.Project) portalsdk.ProjectResponse {
	return portalsdk.ProjectResponse{
		ID:           p.ID,
		FreelancerID: p.FreelancerID,
		ClientID:     p.ClientID,
		Name:         p.Name,
		ClientName:   p.ClientName,
		Description:  p.Description,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectList(projects []domain.Project) portalsdk.ProjectListResponse {
	out := portalsdk.ProjectListResponse{Projects: make([]portalsdk.ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectResponse(p))
	}
	return out
}

func toUpdateResponse(u domain.Update) portalsdk.UpdateResponse {
	return portalsdk.UpdateResponse{
		ID:        u.ID,
		ProjectID: u.ProjectID,
		AuthorID:  u.AuthorID,
		Content:   u.Content,
		CreatedAt: u.CreatedAt,
	}
}

func toInviteResponse(inv domain.Invite, now time.Time) portalsdk.InviteResponse {
	return portalsdk.InviteResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Token:     inv.Token,
		ProjectID: inv.ProjectID,
		Status:    string(inv.Status),
		Expired:   inv.Expired(now),
		CreatedAt: inv.CreatedAt,
		ExpiresAt: inv.ExpiresAt,
	}
}
