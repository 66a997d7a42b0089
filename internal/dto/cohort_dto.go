package dto

// CohortCreateRequest creates a cohort; the id is assigned by the store.
type CohortCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// CohortUpdateRequest patches a cohort. Nil fields are left untouched.
type CohortUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}
