package domain

import "time"

// Update is a status update posted on a project by its freelancer or its
// linked client.
type Update struct {
	ID        string
	ProjectID string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}
