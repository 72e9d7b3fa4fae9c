package domain

import "time"

// Relation is an edge in the client-freelancer graph. Edges are append-only
// and unique per (client, freelancer) pair.
type Relation struct {
	ID           string
	ClientID     string
	FreelancerID string
	CreatedAt    time.Time
}
