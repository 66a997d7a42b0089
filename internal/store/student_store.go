package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

const studentsKey = "students"

// StudentStore owns the student collection. Ids are opaque unique tokens
// assigned at creation time.
type StudentStore struct {
	col *Collection[models.Student]
}

// NewStudentStore builds the store on top of the substrate.
func NewStudentStore(kv KeyValue, logger zerolog.Logger) *StudentStore {
	col := NewCollection(studentsKey, kv, func(s models.Student) string {
		return s.ID
	}, logger)
	return &StudentStore{col: col}
}

// Load hydrates the collection from the substrate.
func (s *StudentStore) Load(ctx context.Context) error {
	return s.col.Load(ctx)
}

// List returns all students in insertion order.
func (s *StudentStore) List() []models.Student {
	return s.col.List()
}

// Get returns the student with the given id.
func (s *StudentStore) Get(id string) (models.Student, bool) {
	return s.col.Get(id)
}

// Create assigns a fresh id and appends the student.
func (s *StudentStore) Create(ctx context.Context, student models.Student) models.Student {
	student.ID = uuid.NewString()
	s.col.Append(ctx, student)
	return student
}

// BulkCreate assigns fresh ids to every candidate and appends them with a
// single write-through. Used by the spreadsheet import.
func (s *StudentStore) BulkCreate(ctx context.Context, students []models.Student) []models.Student {
	if len(students) == 0 {
		return nil
	}
	created := make([]models.Student, len(students))
	for i, student := range students {
		student.ID = uuid.NewString()
		created[i] = student
	}
	s.col.Append(ctx, created...)
	return created
}

// Update merges fields into the matching student; missing ids are a no-op.
func (s *StudentStore) Update(ctx context.Context, id string, merge func(*models.Student)) bool {
	return s.col.Update(ctx, id, merge)
}

// Delete removes the student; missing ids are a no-op.
func (s *StudentStore) Delete(ctx context.Context, id string) bool {
	return s.col.Delete(ctx, id)
}
