package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/cryptox"
	"github.com/klantsync/klantsync/pkg/idx"
	"github.com/klantsync/klantsync/pkg/sessionx"
	"github.com/klantsync/klantsync/pkg/slogx"
)

// acceptedHistoryLimit caps the accepted section of the invite overview.
const acceptedHistoryLimit = 10

type InviteService struct {
	Store    store.Store
	Sessions *sessionx.Manager
}

// IssueResult is the outcome of IssueInvite. Exactly one of Invite or
// Client is meaningful: when the target email already belongs to a client
// account no invite is created and the client is linked directly.
type IssueResult struct {
	Invite domain.Invite
	Linked bool
	Client domain.User
}

// IssueInvite creates or refreshes a client invitation for a freelancer.
// Issuing to an email with a pending invite returns that invite with its
// original token; when projectID differs from the stored one the invite is
// repointed, last write wins.
func (s *InviteService) IssueInvite(ctx context.Context, freelancerID, email, projectID string) (IssueResult, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Validate the target email.
	if _, err := mail.ParseAddress(email); err != nil {
		verr := &ValidationError{}
		verr.Add("email", "invalid email address")
		return IssueResult{}, verr
	}

	// 2. When a project reference is supplied it must be one of the
	// issuer's own projects.
	if projectID != "" {
		project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return IssueResult{}, ErrProjectNotFound
			}
			log.Error("failed to fetch project", slog.Any("error", err))
			return IssueResult{}, err
		}
		if project.FreelancerID != freelancerID {
			return IssueResult{}, ErrProjectNotFound
		}
	}

	// 3. An already-registered client skips the invite flow entirely and
	// gets linked (and attached, when a project was named) right away.
	existing, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		switch existing.Role {
		case domain.RoleClient:
			return s.linkExistingClient(ctx, existing, freelancerID, projectID)
		case domain.RoleFreelancer:
			log.Warn("invite attempted for a freelancer account",
				slog.String("freelancer_id", freelancerID),
			)
			return IssueResult{}, ErrEmailIsFreelancer
		}
		return IssueResult{}, ErrInvalidRole
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up invite email", slog.Any("error", err))
		return IssueResult{}, err
	}

	// 4. Reuse the pending invite for this (email, freelancer) pair if one
	// exists, repointing its project reference.
	pending, err := s.Store.Invites().GetPendingInvite(ctx, email, freelancerID)
	if err == nil {
		return s.repointPending(ctx, pending, projectID)
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up pending invite", slog.Any("error", err))
		return IssueResult{}, err
	}

	// 5. Mint a fresh invite.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return IssueResult{}, err
	}

	now := time.Now().UTC()
	invite := domain.Invite{
		ID:           idx.New().String(),
		Email:        email,
		Token:        token,
		FreelancerID: freelancerID,
		ProjectID:    projectID,
		Status:       domain.InvitePending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(domain.InviteTTL),
		UpdatedAt:    now,
	}
	err = s.Store.Invites().CreateInvite(ctx, invite)
	if err == nil {
		log.Info("invite issued",
			slog.String("invite_id", invite.ID),
			slog.String("freelancer_id", freelancerID),
			slog.Time("expires_at", invite.ExpiresAt),
		)
		return IssueResult{Invite: invite}, nil
	}

	// 6. A concurrent issue for the same pair won the pending unique index.
	// The winner's invite is the one to hand back, repointed if needed.
	if errors.Is(err, store.ErrAlreadyExists) {
		pending, ferr := s.Store.Invites().GetPendingInvite(ctx, email, freelancerID)
		if ferr != nil {
			log.Error("failed to recover racing invite", slog.Any("error", ferr))
			return IssueResult{}, ferr
		}
		return s.repointPending(ctx, pending, projectID)
	}

	log.Error("failed to create invite", slog.Any("error", err))
	return IssueResult{}, err
}

func (s *InviteService) linkExistingClient(ctx context.Context, client domain.User, freelancerID, projectID string) (IssueResult, error) {
	log := slogx.FromContext(ctx)

	// Edge and attachment commit together; a failure leaves neither.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := linkClient(ctx, tx, client.ID, freelancerID); err != nil {
			return err
		}
		if projectID != "" {
			if err := tx.Projects().AssignClient(ctx, projectID, client.ID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrProjectNotFound
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to link existing client",
			slog.String("client_id", client.ID),
			slog.Any("error", err),
		)
		return IssueResult{}, err
	}
	log.Info("existing client linked without invite",
		slog.String("client_id", client.ID),
		slog.String("freelancer_id", freelancerID),
	)
	return IssueResult{Linked: true, Client: client}, nil
}

func (s *InviteService) repointPending(ctx context.Context, pending domain.Invite, projectID string) (IssueResult, error) {
	log := slogx.FromContext(ctx)

	if pending.ProjectID == projectID {
		return IssueResult{Invite: pending}, nil
	}

	// Last write wins on the project reference of a pending invite.
	log.Info("pending invite repointed",
		slog.String("invite_id", pending.ID),
		slog.String("old_project_id", pending.ProjectID),
		slog.String("new_project_id", projectID),
	)
	if err := s.Store.Invites().RepointInvite(ctx, pending.ID, projectID); err != nil {
		log.Error("failed to repoint invite", slog.Any("error", err))
		return IssueResult{}, err
	}
	pending.ProjectID = projectID
	return IssueResult{Invite: pending}, nil
}

// LookupInvite resolves an invite by token without mutating it. Callers
// derive expiry with Invite.Expired; the acceptance view uses this to
// pre-fill the email and to render expired or already-used states.
func (s *InviteService) LookupInvite(ctx context.Context, token string) (domain.Invite, error) {
	invite, err := s.Store.Invites().GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, err
	}
	return invite, nil
}

// AcceptParams carries the two acceptance paths. A non-empty UserID means a
// valid session accompanied the request; otherwise the registration fields
// describe the account to create.
type AcceptParams struct {
	Token string

	// Authenticated path.
	UserID string
	Email  string
	Role   domain.Role

	// Anonymous registration path.
	Username        string
	Password        string
	PasswordConfirm string
}

// AcceptResult is the outcome of a successful acceptance. SessionToken is
// set only on the new-account path; an already-authenticated client keeps
// the session it came with.
type AcceptResult struct {
	User         domain.User
	Relation     domain.Relation
	ProjectID    string
	SessionToken string
}

// AcceptInvite consumes an invite token and links the accepting client to
// the issuing freelancer. It performs the following steps:
//  1. Resolves the invite by token
//  2. Rejects expired invites (expiry is checked at use, never swept)
//  3. Rejects already-accepted invites
//  4. Resolves the client account: verifies the session matches the invite,
//     or validates the registration form and creates the account
//  5. Ensures the client-freelancer edge exists
//  6. Attaches the client to the referenced project, if it still exists
//  7. Marks the invite accepted
//
// Steps 4-7 run in one transaction; a failed accept leaves no partial state.
func (s *InviteService) AcceptInvite(ctx context.Context, p AcceptParams) (AcceptResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Resolve the invite.
	invite, err := s.Store.Invites().GetInviteByToken(ctx, p.Token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("acceptance attempted with unknown token")
			return AcceptResult{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 2. Expired invites stay pending in storage but are dead on arrival.
	if invite.Expired(now) {
		log.Warn("acceptance attempted with expired invite",
			slog.String("invite_id", invite.ID),
			slog.Time("expires_at", invite.ExpiresAt),
		)
		return AcceptResult{}, ErrInviteExpired
	}

	// 3. Accepted is terminal.
	if invite.Status == domain.InviteAccepted {
		log.Warn("acceptance attempted with already-used invite",
			slog.String("invite_id", invite.ID),
		)
		return AcceptResult{}, ErrInviteAlreadyUsed
	}

	authenticated := p.UserID != ""

	// 4a. Authenticated path: the session must belong to a client account
	// whose email matches the invite.
	if authenticated {
		if p.Role != domain.RoleClient {
			return AcceptResult{}, ErrNotClientAccount
		}
		if !strings.EqualFold(p.Email, invite.Email) {
			log.Warn("acceptance attempted with mismatched session email",
				slog.String("invite_id", invite.ID),
			)
			return AcceptResult{}, ErrEmailMismatch
		}
	}

	// 4b. Anonymous path: validate the registration form up front so every
	// violation is reported in one response.
	var passwordHash string
	if !authenticated {
		if err := s.validateAcceptForm(ctx, invite, p); err != nil {
			return AcceptResult{}, err
		}
		passwordHash, err = cryptox.HashPassword(p.Password)
		if err != nil {
			log.Error("failed to hash password", slog.Any("error", err))
			return AcceptResult{}, err
		}
	}

	var result AcceptResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Resolve or create the client account inside the transaction so
		// a failed accept leaves no orphaned user.
		var client domain.User
		if authenticated {
			client, err = tx.Users().GetUserByID(ctx, p.UserID)
			if err != nil {
				return err
			}
		} else {
			client = domain.User{
				ID:           idx.New().String(),
				Email:        invite.Email,
				Username:     strings.TrimSpace(p.Username),
				PasswordHash: passwordHash,
				Role:         domain.RoleClient,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Users().CreateUser(ctx, client); err != nil {
				if errors.Is(err, store.ErrAlreadyExists) {
					verr := &ValidationError{}
					verr.Add("username", "username or email is already taken")
					return verr
				}
				return err
			}
		}

		// 5. Idempotent edge insert.
		rel, err := linkClient(ctx, tx, client.ID, invite.FreelancerID)
		if err != nil {
			return err
		}

		// 6. Attach the client to the referenced project. The project may
		// have been deleted since issuance; that never fails the accept.
		if invite.ProjectID != "" {
			err := tx.Projects().AssignClient(ctx, invite.ProjectID, client.ID)
			switch {
			case err == nil:
				result.ProjectID = invite.ProjectID
			case errors.Is(err, store.ErrNotFound):
				log.Info("invite project vanished before acceptance",
					slog.String("invite_id", invite.ID),
					slog.String("project_id", invite.ProjectID),
				)
			default:
				return err
			}
		}

		// 7. pending -> accepted. Zero rows means a concurrent accept beat
		// us to it; the transaction rolls back without side effects.
		if err := tx.Invites().MarkInviteAccepted(ctx, invite.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteAlreadyUsed
			}
			return err
		}

		result.User = client
		result.Relation = rel
		return nil
	})
	if err != nil {
		return AcceptResult{}, err
	}

	// 8. A freshly created account gets a session; an authenticated client
	// keeps its own.
	if !authenticated {
		token, err := s.Sessions.Mint(result.User.ID, result.User.Email, result.User.Username, result.User.Role.String(), now)
		if err != nil {
			log.Error("failed to mint session", slog.Any("error", err))
			return AcceptResult{}, err
		}
		result.SessionToken = token
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("client_id", result.User.ID),
		slog.String("freelancer_id", invite.FreelancerID),
		slog.Bool("new_account", !authenticated),
	)
	return result, nil
}

func (s *InviteService) validateAcceptForm(ctx context.Context, invite domain.Invite, p AcceptParams) error {
	log := slogx.FromContext(ctx)

	username := strings.TrimSpace(p.Username)
	usernameLen := utf8.RuneCountInString(username)
	verr := &ValidationError{}
	if usernameLen < usernameMinLen || usernameLen > usernameMaxLen {
		verr.Add("username", "username must be between 3 and 80 characters")
	}
	if utf8.RuneCountInString(p.Password) < passwordMinLen {
		verr.Add("password", "password must be at least 8 characters")
	}
	if p.Password != p.PasswordConfirm {
		verr.Add("password_confirm", "passwords do not match")
	}

	if usernameLen >= usernameMinLen && usernameLen <= usernameMaxLen {
		if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
			verr.Add("username", "username is already taken")
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check username availability", slog.Any("error", err))
			return err
		}
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, invite.Email); err == nil {
		verr.Add("email", "an account with this email already exists, sign in to accept")
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return err
	}

	return verr.Err()
}

// InviteOverview is the freelancer's my-invites view: every pending invite
// plus a short tail of recently accepted ones.
type InviteOverview struct {
	Pending  []domain.Invite
	Accepted []domain.Invite
}

func (s *InviteService) ListInvites(ctx context.Context, freelancerID string) (InviteOverview, error) {
	log := slogx.FromContext(ctx)

	pending, err := s.Store.Invites().ListInvitesByFreelancer(ctx, freelancerID, domain.InvitePending, 0)
	if err != nil {
		log.Error("failed to list pending invites", slog.Any("error", err))
		return InviteOverview{}, err
	}
	accepted, err := s.Store.Invites().ListInvitesByFreelancer(ctx, freelancerID, domain.InviteAccepted, acceptedHistoryLimit)
	if err != nil {
		log.Error("failed to list accepted invites", slog.Any("error", err))
		return InviteOverview{}, err
	}
	return InviteOverview{Pending: pending, Accepted: accepted}, nil
}
