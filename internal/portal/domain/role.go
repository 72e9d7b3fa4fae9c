package domain

// Role is the fixed capability class of a user, set at account creation.
// The set is closed; access-control sites switch exhaustively over it.
type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFreelancer, RoleClient:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
