package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/idx"
	"github.com/klantsync/klantsync/pkg/slogx"
)

const projectNameMaxLen = 120

type ProjectService struct {
	Store   store.Store
	Invites *InviteService
}

// ProjectInput is the create/edit form. ClientID and InviteEmail are
// mutually exclusive ways of attaching a client: an already-linked account
// by id, or any email which is linked directly or invited depending on
// whether it has a client account.
type ProjectInput struct {
	Name        string
	ClientName  string
	Description string
	Status      domain.ProjectStatus
	ClientID    string
	InviteEmail string
}

func (in *ProjectInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Description = strings.TrimSpace(in.Description)
	in.InviteEmail = strings.ToLower(strings.TrimSpace(in.InviteEmail))
	if in.Status == "" {
		in.Status = domain.ProjectActive
	}
}

func (in *ProjectInput) validate() error {
	verr := &ValidationError{}
	if in.Name == "" || len(in.Name) > projectNameMaxLen {
		verr.Add("name", "name is required and must be at most 120 characters")
	}
	if len(in.ClientName) > projectNameMaxLen {
		verr.Add("client_name", "client name must be at most 120 characters")
	}
	if !in.Status.Valid() {
		verr.Add("status", "status must be active, completed, or paused")
	}
	if in.ClientID != "" && in.InviteEmail != "" {
		verr.Add("client", "attach an existing client or invite by email, not both")
	}
	return verr.Err()
}

// CreateResult pairs the new project with the invite outcome when the
// freelancer asked to bring a client in by email.
type CreateResult struct {
	Project domain.Project
	Issued  *IssueResult
}

// CreateProject creates a project for a freelancer, optionally attaching or
// inviting a client in the same call.
func (s *ProjectService) CreateProject(ctx context.Context, freelancerID string, in ProjectInput) (CreateResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Only freelancer accounts own projects.
	owner, err := s.Store.Users().GetUserByID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CreateResult{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return CreateResult{}, err
	}
	if owner.Role != domain.RoleFreelancer {
		return CreateResult{}, ErrFreelancerOnly
	}

	// 2. Validate the form.
	in.normalize()
	if err := in.validate(); err != nil {
		return CreateResult{}, err
	}

	// 3. An existing-client attachment must reference a linked client.
	if in.ClientID != "" {
		if _, err := s.Store.Relations().GetRelation(ctx, in.ClientID, freelancerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return CreateResult{}, ErrNotLinkedClient
			}
			log.Error("failed to fetch relation", slog.Any("error", err))
			return CreateResult{}, err
		}
	}

	// 4. Insert the project.
	now := time.Now().UTC()
	project := domain.Project{
		ID:           idx.New().String(),
		FreelancerID: freelancerID,
		ClientID:     in.ClientID,
		Name:         in.Name,
		ClientName:   in.ClientName,
		Description:  in.Description,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return CreateResult{}, err
	}

	result := CreateResult{Project: project}

	// 5. Email mode: a registered client gets linked and attached directly,
	// an unknown address gets an invite pointing at this project.
	if in.InviteEmail != "" {
		issued, err := s.Invites.IssueInvite(ctx, freelancerID, in.InviteEmail, project.ID)
		if err != nil {
			return CreateResult{}, err
		}
		if issued.Linked {
			project.ClientID = issued.Client.ID
			result.Project = project
		}
		result.Issued = &issued
	}

	log.Info("project created",
		slog.String("project_id", project.ID),
		slog.String("freelancer_id", freelancerID),
	)
	return result, nil
}

// GetProject returns a project for its owner or its attached client.
func (s *ProjectService) GetProject(ctx context.Context, userID, projectID string) (domain.Project, error) {
	user, project, err := s.fetchUserAndProject(ctx, userID, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if !CanAccessProject(user, project) {
		return domain.Project{}, ErrForbidden
	}
	return project, nil
}

// EditProject updates a project's fields. Owner only. Attaching an existing
// client through the edit form links the pair first when no edge exists yet.
func (s *ProjectService) EditProject(ctx context.Context, userID, projectID string, in ProjectInput) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	user, project, err := s.fetchUserAndProject(ctx, userID, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if project.FreelancerID != user.ID {
		return domain.Project{}, ErrNotProjectOwner
	}

	in.normalize()
	if in.InviteEmail != "" {
		verr := &ValidationError{}
		verr.Add("client", "inviting by email is only available on project creation")
		return domain.Project{}, verr
	}
	if err := in.validate(); err != nil {
		return domain.Project{}, err
	}

	project.Name = in.Name
	project.ClientName = in.ClientName
	project.Description = in.Description
	project.Status = in.Status
	if err := s.Store.Projects().UpdateProject(ctx, project); err != nil {
		log.Error("failed to update project", slog.Any("error", err))
		return domain.Project{}, err
	}

	// Attaching a client from the edit form links the pair if needed.
	if in.ClientID != "" && in.ClientID != project.ClientID {
		client, err := s.Store.Users().GetUserByID(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Project{}, ErrUserNotFound
			}
			log.Error("failed to fetch client", slog.Any("error", err))
			return domain.Project{}, err
		}
		if client.Role != domain.RoleClient {
			return domain.Project{}, ErrNotLinkedClient
		}
		// Edge and attachment commit together; a failure leaves neither.
		err = s.Store.WithTx(ctx, func(tx store.Tx) error {
			if _, err := linkClient(ctx, tx, client.ID, user.ID); err != nil {
				return err
			}
			return tx.Projects().AssignClient(ctx, projectID, client.ID)
		})
		if err != nil {
			log.Error("failed to attach client", slog.Any("error", err))
			return domain.Project{}, err
		}
		project.ClientID = client.ID
	}

	log.Info("project updated", slog.String("project_id", project.ID))
	return project, nil
}

// DeleteProject removes a project and, via schema cascade, its updates.
// Owner only.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	log := slogx.FromContext(ctx)

	user, project, err := s.fetchUserAndProject(ctx, userID, projectID)
	if err != nil {
		return err
	}
	if project.FreelancerID != user.ID {
		return ErrNotProjectOwner
	}

	if err := s.Store.Projects().DeleteProject(ctx, projectID); err != nil {
		log.Error("failed to delete project", slog.Any("error", err))
		return err
	}

	log.Info("project deleted",
		slog.String("project_id", projectID),
		slog.String("freelancer_id", userID),
	)
	return nil
}

// Dashboard lists the user's projects, newest first. Freelancers see what
// they own, clients see what they are attached to.
func (s *ProjectService) Dashboard(ctx context.Context, userID string) ([]domain.Project, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return nil, err
	}

	switch user.Role {
	case domain.RoleFreelancer:
		return s.Store.Projects().ListProjectsByFreelancer(ctx, user.ID)
	case domain.RoleClient:
		return s.Store.Projects().ListProjectsByClient(ctx, user.ID)
	}
	return nil, ErrInvalidRole
}

func (s *ProjectService) fetchUserAndProject(ctx context.Context, userID, projectID string) (domain.User, domain.Project, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Project{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, domain.Project{}, err
	}

	project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Project{}, ErrProjectNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return domain.User{}, domain.Project{}, err
	}
	return user, project, nil
}
