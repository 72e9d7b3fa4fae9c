package domain

import "time"

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted" // terminal, never reverts
)

// InviteTTL is how long an invite link stays valid after issuance.
const InviteTTL = 7 * 24 * time.Hour

// Invite is a pending or accepted client invitation. The token is stored
// raw (unique-indexed) because re-issuing a pending invite for the same
// (email, freelancer) pair must hand back the original link.
type Invite struct {
	ID           string
	Email        string // lowercased
	Token        string
	FreelancerID string
	ProjectID    string // optional; repointed on re-issue
	Status       InviteStatus
	CreatedAt    time.Time
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// Expired reports whether the invite is past its expiry at the given time.
// Expiry is a derived predicate: expired invites stay pending in storage and
// are rejected at use time.
func (i Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
