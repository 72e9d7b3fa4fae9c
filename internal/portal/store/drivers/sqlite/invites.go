package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, email, token, freelancer_id, project_id, status, created_at, expires_at, updated_at`

func scanInvite(row interface{ Scan(dest ...any) error }) (domain.Invite, error) {
	var (
		inv       domain.Invite
		projectID sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.Email, &inv.Token, &inv.FreelancerID, &projectID,
		&inv.Status, &inv.CreatedAt, &inv.ExpiresAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.ProjectID = mapNullString(projectID)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, email, token, freelancer_id, project_id, status, created_at, expires_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, inv.Token, inv.FreelancerID, mapStringNull(inv.ProjectID),
		inv.Status, inv.CreatedAt, inv.ExpiresAt, inv.UpdatedAt)
	return mapConflict(err)
}

func (r *invitesRepo) GetInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE token = ?`, token)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) GetPendingInvite(ctx context.Context, email, freelancerID string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE email = ? AND freelancer_id = ? AND status = 'pending'`,
		email, freelancerID)
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) RepointInvite(ctx context.Context, inviteID, projectID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET project_id = ?, updated_at = ? WHERE id = ? AND status = 'pending'`,
		mapStringNull(projectID), time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// MarkInviteAccepted transitions pending -> accepted. The status guard keeps
// the transition monotonic even if callers race.
func (r *invitesRepo) MarkInviteAccepted(ctx context.Context, inviteID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET status = 'accepted', updated_at = ? WHERE id = ? AND status = 'pending'`,
		time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitesRepo) ListInvitesByFreelancer(ctx context.Context, freelancerID string, status domain.InviteStatus, limit int) ([]domain.Invite, error) {
	query := `SELECT ` + inviteColumns + ` FROM invites
		 WHERE freelancer_id = ? AND status = ? ORDER BY created_at DESC`
	args := []any{freelancerID, status}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites WHERE status = 'pending' AND expires_at < ?`, time.Now().UTC())
	return err
}
