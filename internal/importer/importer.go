// Package importer turns tabular spreadsheet input into candidate student
// records. The parsing contract is deliberately forgiving: real enrolment
// sheets arrive with banner rows above the header and half-filled lines.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aeroclub-norte/turnero-api/internal/models"
)

const (
	headerFirstName  = "nombre"
	headerLastName   = "apellido"
	headerNationalID = "dni"
	headerCohort     = "promocion"
	headerClassTier  = "clase"
)

// ReadWorkbook extracts the cell grid of the first sheet of an xlsx file.
func ReadWorkbook(r io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// ParseStudents scans the rows for a header line (the first row containing a
// cell equal to "nombre", case-insensitively) and converts every subsequent
// row that covers the resolved columns into a candidate student without an
// id. No header means no records. Rows with an unusable cohort number fall
// back to defaultCohortID; unrecognised class tiers become tier A.
func ParseStudents(rows [][]string, defaultCohortID int) []models.Student {
	headerIdx := -1
	for i, row := range rows {
		for _, cell := range row {
			if strings.EqualFold(cell, headerFirstName) {
				headerIdx = i
				break
			}
		}
		if headerIdx >= 0 {
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	header := rows[headerIdx]
	cols := columnIndexes(header)
	maxIdx := maxColumn(cols)

	var students []models.Student
	for _, row := range rows[headerIdx+1:] {
		if len(row) <= maxIdx {
			continue
		}

		cohortID := defaultCohortID
		if parsed, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.cohort))); err == nil && parsed != 0 {
			cohortID = parsed
		}

		students = append(students, models.Student{
			FirstName:  cell(row, cols.firstName),
			LastName:   cell(row, cols.lastName),
			NationalID: cell(row, cols.nationalID),
			CohortID:   cohortID,
			ClassTier:  models.ParseClassTier(cell(row, cols.classTier)),
		})
	}
	return students
}

type columns struct {
	firstName  int
	lastName   int
	nationalID int
	cohort     int
	classTier  int
}

func columnIndexes(header []string) columns {
	return columns{
		firstName:  findColumn(header, headerFirstName),
		lastName:   findColumn(header, headerLastName),
		nationalID: findColumn(header, headerNationalID),
		cohort:     findColumn(header, headerCohort),
		classTier:  findColumn(header, headerClassTier),
	}
}

func findColumn(header []string, name string) int {
	for i, cell := range header {
		if strings.EqualFold(cell, name) {
			return i
		}
	}
	return -1
}

func maxColumn(c columns) int {
	max := c.firstName
	for _, idx := range []int{c.lastName, c.nationalID, c.cohort, c.classTier} {
		if idx > max {
			max = idx
		}
	}
	return max
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
