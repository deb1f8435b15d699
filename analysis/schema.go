package analysis

import (
	"errors"
	"sort"
	"strings"
)

const (
	marksSuffix      = "_marks"
	attendanceSuffix = "_attendance"
)

// ErrNoColumns is returned for a table without any header
var ErrNoColumns = errors.New("table has no columns")

// TableSchema is the structure inferred from a table's header row
type TableSchema struct {
	NameColumn int            // Index of the student name column
	Subjects   []string       // Canonical subject order
	marksCol   map[string]int // Subject -> marks column index
	attCol     map[string]int // Subject -> attendance column index
}

// InferSchema derives the subject universe from the header. Only columns ending
// in _marks define subjects; the result is deduplicated and sorted.
// Attendance columns are matched to those subjects but never add one.
func InferSchema(columns []string) (TableSchema, error) {
	if len(columns) == 0 {
		return TableSchema{}, ErrNoColumns
	}

	schema := TableSchema{
		NameColumn: 0,
		marksCol:   make(map[string]int),
		attCol:     make(map[string]int),
	}
	for i, col := range columns {
		// first occurrence wins for duplicated headers
		if subject, ok := strings.CutSuffix(col, marksSuffix); ok {
			if _, seen := schema.marksCol[subject]; !seen {
				schema.marksCol[subject] = i
				schema.Subjects = append(schema.Subjects, subject)
			}
			continue
		}
		if subject, ok := strings.CutSuffix(col, attendanceSuffix); ok {
			if _, seen := schema.attCol[subject]; !seen {
				schema.attCol[subject] = i
			}
		}
	}
	sort.Strings(schema.Subjects)
	if schema.Subjects == nil {
		schema.Subjects = []string{}
	}
	return schema, nil
}

// MarksColumn returns the column holding subject's marks
func (s TableSchema) MarksColumn(subject string) (int, bool) {
	i, ok := s.marksCol[subject]
	return i, ok
}

// AttendanceColumn returns the column holding subject's attendance
func (s TableSchema) AttendanceColumn(subject string) (int, bool) {
	i, ok := s.attCol[subject]
	return i, ok
}
