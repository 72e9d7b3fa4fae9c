package portalsdk

import "time"

// ErrorResponse is the standard error envelope returned by every endpoint.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g., "invite_expired")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// Violation is a single failed rule on a named form field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when form validation fails. It carries
// every violation so clients can render them all at once.
type ValidationErrorResponse struct {
	Error            string      `json:"error"` // always "validation_failed"
	ErrorDescription string      `json:"error_description"`
	Violations       []Violation `json:"violations"`
}

// UserInfo is the public shape of an account.
type UserInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the signup form.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Role            string `json:"role"` // "freelancer" or "client"
}

// LoginRequest is the credential form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by register, login, and the new-account
// acceptance path.
type SessionResponse struct {
	SessionToken string   `json:"session_token"`
	TokenType    string   `json:"token_type"` // always "Bearer"
	ExpiresIn    int      `json:"expires_in"` // seconds
	User         UserInfo `json:"user"`
}

// ProjectRequest is the create/edit form. ClientID attaches an
// already-linked client; InviteEmail links or invites by email (create only).
type ProjectRequest struct {
	Name        string `json:"name"`
	ClientName  string `json:"client_name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"` // active | completed | paused
	ClientID    string `json:"client_id,omitempty"`
	InviteEmail string `json:"invite_email,omitempty"`
}

// ProjectResponse is the public shape of a project.
type ProjectResponse struct {
	ID           string    `json:"id"`
	FreelancerID string    `json:"freelancer_id"`
	ClientID     string    `json:"client_id,omitempty"`
	Name         string    `json:"name"`
	ClientName   string    `json:"client_name,omitempty"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectCreateResponse pairs the new project with the invite outcome when
// a client email was supplied. Exactly one of Invite or LinkedClient is set
// in that case.
type ProjectCreateResponse struct {
	Project      ProjectResponse `json:"project"`
	Invite       *InviteResponse `json:"invite,omitempty"`
	LinkedClient *UserInfo       `json:"linked_client,omitempty"`
}

// ProjectListResponse is the dashboard listing.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// UpdateRequest posts a status update on a project.
type UpdateRequest struct {
	Content string `json:"content"`
}

// UpdateResponse is the public shape of a status update.
type UpdateResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateListResponse lists a project's updates, newest first.
type UpdateListResponse struct {
	Updates []UpdateResponse `json:"updates"`
}

// InviteRequest issues a client invitation, optionally tied to a project.
type InviteRequest struct {
	Email     string `json:"email"`
	ProjectID string `json:"project_id,omitempty"`
}

// InviteResponse is the issuer's view of an invite. Token is included so
// the issuer can share the acceptance link; there is no email delivery.
type InviteResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ProjectID string    `json:"project_id,omitempty"`
	Status    string    `json:"status"`
	Expired   bool      `json:"expired"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueInviteResponse is the outcome of POST /v1/invites. When the email
// already belonged to a client account, no invite is created and
// LinkedClient reports who got linked instead.
type IssueInviteResponse struct {
	Invite       *InviteResponse `json:"invite,omitempty"`
	LinkedClient *UserInfo       `json:"linked_client,omitempty"`
}

// InviteListResponse is the freelancer's invite overview: all pending
// invites plus the ten most recently accepted.
type InviteListResponse struct {
	Pending  []InviteResponse `json:"pending"`
	Accepted []InviteResponse `json:"accepted"`
}

// AcceptViewResponse is the public GET acceptance view, used to pre-fill
// the form behind an invite link.
type AcceptViewResponse struct {
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Expired   bool      `json:"expired"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AcceptRequest is the acceptance form. All fields are ignored when the
// request carries a valid client session.
type AcceptRequest struct {
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	PasswordConfirm string `json:"password_confirm,omitempty"`
}

// AcceptResponse is the outcome of a successful acceptance. Session fields
// are set only when a new account was created.
type AcceptResponse struct {
	User         UserInfo `json:"user"`
	ProjectID    string   `json:"project_id,omitempty"`
	SessionToken string   `json:"session_token,omitempty"`
	TokenType    string   `json:"token_type,omitempty"`
	ExpiresIn    int      `json:"expires_in,omitempty"`
}

// ClientListResponse lists a freelancer's linked client accounts.
type ClientListResponse struct {
	Clients []UserInfo `json:"clients"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
