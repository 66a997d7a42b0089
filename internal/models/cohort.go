package models

// Cohort groups students that share a training intake ("promoción").
// Deleting a cohort does not cascade to students or slots that reference it.
type Cohort struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
