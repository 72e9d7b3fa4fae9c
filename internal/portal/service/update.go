package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/idx"
	"github.com/klantsync/klantsync/pkg/slogx"
)

const updateContentMaxLen = 2000

type UpdateService struct {
	Store    store.Store
	Projects *ProjectService
}

// AddUpdate posts a status update on a project. The author must be the
// owning freelancer or the attached client.
func (s *UpdateService) AddUpdate(ctx context.Context, userID, projectID, content string) (domain.Update, error) {
	log := slogx.FromContext(ctx)

	user, project, err := s.Projects.fetchUserAndProject(ctx, userID, projectID)
	if err != nil {
		return domain.Update{}, err
	}
	if !CanAccessProject(user, project) {
		return domain.Update{}, ErrForbidden
	}

	content = strings.TrimSpace(content)
	verr := &ValidationError{}
	if content == "" {
		verr.Add("content", "content is required")
	}
	if len(content) > updateContentMaxLen {
		verr.Add("content", "content must be at most 2000 characters")
	}
	if err := verr.Err(); err != nil {
		return domain.Update{}, err
	}

	update := domain.Update{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		AuthorID:  user.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Updates().CreateUpdate(ctx, update); err != nil {
		log.Error("failed to create update", slog.Any("error", err))
		return domain.Update{}, err
	}

	log.Info("update posted",
		slog.String("update_id", update.ID),
		slog.String("project_id", project.ID),
		slog.String("author_id", user.ID),
	)
	return update, nil
}

// ListUpdates returns a project's updates, newest first, gated the same way
// as the project detail.
func (s *UpdateService) ListUpdates(ctx context.Context, userID, projectID string) ([]domain.Update, error) {
	user, project, err := s.Projects.fetchUserAndProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if !CanAccessProject(user, project) {
		return nil, ErrForbidden
	}
	return s.Store.Updates().ListUpdatesByProject(ctx, projectID)
}
