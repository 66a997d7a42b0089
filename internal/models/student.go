package models

import "strings"

// Student represents a learner enrolled in a cohort. Wire field names keep
// the Spanish persisted layout the clients already speak.
type Student struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"nombre"`
	LastName   string    `json:"apellido"`
	NationalID string    `json:"dni"`
	CohortID   int       `json:"promocionId"`
	ClassTier  ClassTier `json:"clase"`
}

// DerivedUsername builds the login username: lowercase first letter of the
// first name joined with the last name. No uniqueness is enforced; on login
// the first matching student wins.
func (s Student) DerivedUsername() string {
	first := strings.TrimSpace(s.FirstName)
	initial := ""
	if first != "" {
		initial = string([]rune(first)[0])
	}
	return strings.ToLower(initial + strings.TrimSpace(s.LastName))
}

// FullName returns the display name used as the session username and as the
// reservation holder on slots.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
