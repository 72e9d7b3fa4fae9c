package domain

import "time"

type User struct {
	ID           string
	Email        string // lowercased, unique
	Username     string // unique
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
