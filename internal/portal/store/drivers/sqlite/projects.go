package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, freelancer_id, client_id, name, client_name, description, status, created_at, updated_at`

func scanProject(row interface{ Scan(dest ...any) error }) (domain.Project, error) {
	var (
		p        domain.Project
		clientID sql.NullString
	)
	err := row.Scan(&p.ID, &p.FreelancerID, &clientID, &p.Name, &p.ClientName,
		&p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, err
	}
	p.ClientID = mapNullString(clientID)
	return p, nil
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) ListProjectsByFreelancer(ctx context.Context, freelancerID string) ([]domain.Project, error) {
	return r.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE freelancer_id = ? ORDER BY created_at DESC`,
		freelancerID)
}

func (r *projectsRepo) ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	return r.list(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE client_id = ? ORDER BY created_at DESC`,
		clientID)
}

func (r *projectsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, freelancer_id, client_id, name, client_name, description, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FreelancerID, mapStringNull(p.ClientID), p.Name, p.ClientName,
		p.Description, p.Status, p.CreatedAt, p.UpdatedAt)
	return mapConflict(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, client_name = ?, description = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.ClientName, p.Description, p.Status, time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *projectsRepo) AssignClient(ctx context.Context, projectID, clientID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET client_id = ?, updated_at = ? WHERE id = ?`,
		clientID, time.Now().UTC(), projectID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, projectID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
