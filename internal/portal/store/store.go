package store

import (
	"context"
	"errors"

	"github.com/klantsync/klantsync/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Projects() Projects
	Updates() Updates
	Relations() Relations
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by lowercased email (login, invite checks).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername is used for availability checks during registration.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when email or username is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Projects interface {
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// ListProjectsByFreelancer returns owned projects, newest first.
	ListProjectsByFreelancer(ctx context.Context, freelancerID string) ([]domain.Project, error)

	// ListProjectsByClient returns assigned projects, newest first.
	ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error

	// UpdateProject persists name, client name, description, and status.
	UpdateProject(ctx context.Context, p domain.Project) error

	// AssignClient sets client_id and bumps updated_at.
	AssignClient(ctx context.Context, projectID, clientID string) error

	// DeleteProject cascades to updates (per schema).
	DeleteProject(ctx context.Context, projectID string) error
}

type Updates interface {
	CreateUpdate(ctx context.Context, u domain.Update) error

	// ListUpdatesByProject returns updates newest first.
	ListUpdatesByProject(ctx context.Context, projectID string) ([]domain.Update, error)
}

type Relations interface {
	// CreateRelation inserts an edge. Returns ErrAlreadyExists when the
	// (client, freelancer) pair already has one; callers recover by
	// re-fetching with GetRelation.
	CreateRelation(ctx context.Context, rel domain.Relation) error

	GetRelation(ctx context.Context, clientID, freelancerID string) (domain.Relation, error)

	// ListRelationsByFreelancer returns all edges from the freelancer side.
	ListRelationsByFreelancer(ctx context.Context, freelancerID string) ([]domain.Relation, error)
}

type Invites interface {
	// CreateInvite writes a new invite. Returns ErrAlreadyExists when a
	// pending invite for the same (email, freelancer) pair won a race.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByToken(ctx context.Context, token string) (domain.Invite, error)

	// GetPendingInvite returns the pending invite for (email, freelancer),
	// if any.
	GetPendingInvite(ctx context.Context, email, freelancerID string) (domain.Invite, error)

	// RepointInvite updates the project reference of a pending invite.
	RepointInvite(ctx context.Context, inviteID, projectID string) error

	// MarkInviteAccepted transitions status pending -> accepted.
	MarkInviteAccepted(ctx context.Context, inviteID string) error

	// ListInvitesByFreelancer returns invites with the given status,
	// newest first; limit <= 0 means no limit.
	ListInvitesByFreelancer(ctx context.Context, freelancerID string, status domain.InviteStatus, limit int) ([]domain.Invite, error)

	// DeleteExpiredInvites is optional housekeeping; nothing schedules it.
	DeleteExpiredInvites(ctx context.Context) error
}
