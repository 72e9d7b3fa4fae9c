package sqlite

import (
	"context"

	"github.com/klantsync/klantsync/internal/portal/domain"
)

type relationsRepo struct {
	db dbtx
}

func (r *relationsRepo) CreateRelation(ctx context.Context, rel domain.Relation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO relations (id, client_id, freelancer_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		rel.ID, rel.ClientID, rel.FreelancerID, rel.CreatedAt)
	return mapConflict(err)
}

func (r *relationsRepo) GetRelation(ctx context.Context, clientID, freelancerID string) (domain.Relation, error) {
	var rel domain.Relation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, client_id, freelancer_id, created_at
		 FROM relations WHERE client_id = ? AND freelancer_id = ?`,
		clientID, freelancerID).
		Scan(&rel.ID, &rel.ClientID, &rel.FreelancerID, &rel.CreatedAt)
	if err != nil {
		return domain.Relation{}, mapNotFound(err)
	}
	return rel, nil
}

func (r *relationsRepo) ListRelationsByFreelancer(ctx context.Context, freelancerID string) ([]domain.Relation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, freelancer_id, created_at
		 FROM relations WHERE freelancer_id = ? ORDER BY created_at DESC`, freelancerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []domain.Relation
	for rows.Next() {
		var rel domain.Relation
		if err := rows.Scan(&rel.ID, &rel.ClientID, &rel.FreelancerID, &rel.CreatedAt); err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	return relations, rows.Err()
}
