package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aeroclub-norte/turnero-api/internal/dto"
	"github.com/aeroclub-norte/turnero-api/internal/importer"
	"github.com/aeroclub-norte/turnero-api/internal/models"
	"github.com/aeroclub-norte/turnero-api/internal/store"
)

// ErrStudentNotFound indicates the student id does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentService manages the student collection, including bulk import from
// spreadsheets.
type StudentService interface {
	List(ctx context.Context) []models.Student
	Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id string)
	ImportWorkbook(ctx context.Context, r io.Reader) (dto.StudentImportResponse, error)
	ImportRows(ctx context.Context, rows [][]string) dto.StudentImportResponse
}

type studentService struct {
	students  *store.StudentStore
	cohorts   *store.CohortStore
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(students *store.StudentStore, cohorts *store.CohortStore, validator *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		students:  students,
		cohorts:   cohorts,
		validator: validator,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(_ context.Context) []models.Student {
	return s.students.List()
}

func (s *studentService) Create(ctx context.Context, req dto.StudentCreateRequest) (models.Student, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.NationalID = strings.TrimSpace(req.NationalID)
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, err
	}

	student := s.students.Create(ctx, models.Student{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		CohortID:   req.CohortID,
		ClassTier:  models.ClassTier(req.ClassTier),
	})
	s.logger.Info().Str("student_id", student.ID).Msg("student created")
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id string, req dto.StudentUpdateRequest) (models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, err
	}

	var updated models.Student
	found := s.students.Update(ctx, id, func(st *models.Student) {
		if req.FirstName != nil {
			st.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			st.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.NationalID != nil {
			st.NationalID = strings.TrimSpace(*req.NationalID)
		}
		if req.CohortID != nil {
			st.CohortID = *req.CohortID
		}
		if req.ClassTier != nil {
			st.ClassTier = models.ClassTier(*req.ClassTier)
		}
		updated = *st
	})
	if !found {
		return models.Student{}, ErrStudentNotFound
	}
	return updated, nil
}

// Delete removes the student. Unknown ids are a no-op.
func (s *studentService) Delete(ctx context.Context, id string) {
	if s.students.Delete(ctx, id) {
		s.logger.Info().Str("student_id", id).Msg("student deleted")
	}
}

// ImportWorkbook decodes an uploaded xlsx file and bulk-creates the student
// candidates found in its first sheet.
func (s *studentService) ImportWorkbook(ctx context.Context, r io.Reader) (dto.StudentImportResponse, error) {
	rows, err := importer.ReadWorkbook(r)
	if err != nil {
		return dto.StudentImportResponse{}, fmt.Errorf("decode workbook: %w", err)
	}
	return s.ImportRows(ctx, rows), nil
}

// ImportRows runs the tabular import contract over a cell grid. A sheet
// without a recognisable header yields zero records, which is a valid
// outcome rather than an error.
func (s *studentService) ImportRows(ctx context.Context, rows [][]string) dto.StudentImportResponse {
	defaultCohortID, _ := s.cohorts.FirstID()

	candidates := importer.ParseStudents(rows, defaultCohortID)
	created := s.students.BulkCreate(ctx, candidates)

	s.logger.Info().Int("imported", len(created)).Msg("student import finished")
	return dto.StudentImportResponse{Imported: len(created), Students: created}
}
