package service

import "github.com/klantsync/klantsync/internal/portal/domain"

// CanAccessProject reports whether a user may read a project and post
// updates to it. Freelancers access what they own; clients access what they
// are attached to. The switch is exhaustive over the closed Role set, so an
// unknown role denies by construction.
func CanAccessProject(user domain.User, project domain.Project) bool {
	switch user.Role {
	case domain.RoleFreelancer:
		return project.FreelancerID == user.ID
	case domain.RoleClient:
		return project.ClientID != "" && project.ClientID == user.ID
	}
	return false
}
