package models

// Slot is a bookable flight-instruction interval tied to a cohort and class
// tier. It moves through three states:
//
//	Open     — available, no student
//	Reserved — taken by a student, not yet flown
//	Flown    — flown with recorded hours
//
// The only way between states is through the slot service; generic edits
// never touch the lifecycle fields.
type Slot struct {
	ID         string    `json:"id"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	Title      string    `json:"title"`
	CohortID   int       `json:"promoId"`
	ClassTier  ClassTier `json:"clase"`
	Available  bool      `json:"available"`
	Student    string    `json:"student,omitempty"`
	Flown      bool      `json:"flown,omitempty"`
	FlownHours *float64  `json:"flownHours,omitempty"`
}

// IsOpen reports whether the slot can still be reserved.
func (s Slot) IsOpen() bool {
	return s.Available
}

// IsReserved reports whether a student holds the slot but hours have not
// been recorded yet.
func (s Slot) IsReserved() bool {
	return !s.Available && s.Student != "" && !s.Flown
}

// IsFlown reports whether the slot has recorded flight hours.
func (s Slot) IsFlown() bool {
	return s.Flown
}
