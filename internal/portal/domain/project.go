package domain

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

type Project struct {
	ID           string
	FreelancerID string
	ClientID     string // empty until a client is attached
	Name         string
	ClientName   string // display name, independent of any linked account
	Description  string
	Status       ProjectStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
