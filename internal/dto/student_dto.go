package dto

import "github.com/aeroclub-norte/turnero-api/internal/models"

// StudentCreateRequest creates a single student. Wire names match the
// persisted layout.
type StudentCreateRequest struct {
	FirstName  string `json:"nombre" validate:"required"`
	LastName   string `json:"apellido" validate:"required"`
	NationalID string `json:"dni" validate:"required"`
	CohortID   int    `json:"promocionId"`
	ClassTier  string `json:"clase" validate:"required,oneof=A B C D"`
}

// StudentUpdateRequest patches a student. Nil fields are left untouched.
type StudentUpdateRequest struct {
	FirstName  *string `json:"nombre" validate:"omitempty,min=1"`
	LastName   *string `json:"apellido" validate:"omitempty,min=1"`
	NationalID *string `json:"dni" validate:"omitempty,min=1"`
	CohortID   *int    `json:"promocionId"`
	ClassTier  *string `json:"clase" validate:"omitempty,oneof=A B C D"`
}

// StudentImportResponse reports the records created by a spreadsheet
// import.
type StudentImportResponse struct {
	Imported int              `json:"imported"`
	Students []models.Student `json:"students"`
}
