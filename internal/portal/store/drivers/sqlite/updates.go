package sqlite

import (
	"context"

	"github.com/klantsync/klantsync/internal/portal/domain"
)

type updatesRepo struct {
	db dbtx
}

func (r *updatesRepo) CreateUpdate(ctx context.Context, u domain.Update) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO updates (id, project_id, author_id, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.ProjectID, u.AuthorID, u.Content, u.CreatedAt)
	return mapConflict(err)
}

func (r *updatesRepo) ListUpdatesByProject(ctx context.Context, projectID string) ([]domain.Update, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, author_id, content, created_at
		 FROM updates WHERE project_id = ? ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []domain.Update
	for rows.Next() {
		var u domain.Update
		if err := rows.Scan(&u.ID, &u.ProjectID, &u.AuthorID, &u.Content, &u.CreatedAt); err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}
	return updates, rows.Err()
}
