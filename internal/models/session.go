package models

// Role names carried in session tokens and checked by the RBAC middleware.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// AdminCohortID is the sentinel cohort for administrator sessions, which
// are not tied to any real cohort.
const AdminCohortID = -1

// SessionIdentity is the in-memory identity established by a successful
// login. It is never persisted; a restart of the service discards every
// active session.
type SessionIdentity struct {
	Username string `json:"username"`
	CohortID int    `json:"cohortId"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Role maps the identity onto the RBAC role name.
func (s SessionIdentity) Role() string {
	if s.IsAdmin {
		return RoleAdmin
	}
	return RoleStudent
}
