package service

import (
	"errors"
	"strings"
)

var (
	ErrInviteNotFound    = errors.New("invite not found")
	ErrInviteExpired     = errors.New("invite has expired")
	ErrInviteAlreadyUsed = errors.New("invite has already been accepted")
	ErrEmailMismatch     = errors.New("invite was issued for a different email address")
	ErrNotClientAccount  = errors.New("signed-in account is not a client account")
	ErrEmailIsFreelancer = errors.New("email belongs to a freelancer account")

	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("no access to this project")
	ErrNotProjectOwner = errors.New("only the project owner can do this")
	ErrNotLinkedClient = errors.New("client is not linked to this freelancer")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrFreelancerOnly  = errors.New("only freelancers can do this")
)

// Violation is a single failed rule on a named form field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found on a form, so callers can
// report them all at once instead of one per round trip.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// Err returns the error itself when any violation was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
