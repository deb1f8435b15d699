package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// UnknownName replaces a blank student name
const UnknownName = "Unknown"

// maxCellMagnitude bounds numeric cells so totals and means stay finite
const maxCellMagnitude = 1e15

// naTokens are cell values read as missing, matching pandas' default NA strings
var naTokens = map[string]struct{}{
	"NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-nan": {}, "-NaN": {},
	"null": {}, "NULL": {}, "#N/A": {}, "<NA>": {}, "None": {},
}

// Normalize turns a raw table into student records plus the canonical subject list.
// A table with no rows yields an empty set while still reporting the subjects
// found in its header. Cell-level problems never fail the call.
func Normalize(table *models.RawTable) (*models.StudentSet, []string, error) {
	if table == nil {
		return nil, nil, ErrNoColumns
	}
	schema, err := InferSchema(table.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to infer table schema: %w", err)
	}

	students := models.NewStudentSet()
	for _, row := range table.Rows {
		students.Set(buildRecord(table, schema, row))
	}
	return students, schema.Subjects, nil
}

func buildRecord(table *models.RawTable, schema TableSchema, row []string) models.StudentRecord {
	// names keep their surrounding spaces; only the blank check trims
	name := table.Cell(row, schema.NameColumn)
	if isMissing(name) {
		name = UnknownName
	}

	record := models.StudentRecord{
		Name:       name,
		Marks:      make([]models.Mark, 0, len(schema.Subjects)),
		Attendance: make(map[string]float64, len(schema.Subjects)),
	}
	for _, subject := range schema.Subjects {
		mark := models.Absent()
		if col, ok := schema.MarksColumn(subject); ok {
			mark = parseMark(table.Cell(row, col))
		}
		if mark.IsAbsent() {
			record.AbsentCount++
		}
		record.Marks = append(record.Marks, mark)
		record.Total += mark.Value()

		attendance := 0.0
		if col, ok := schema.AttendanceColumn(subject); ok {
			attendance = parseNumber(table.Cell(row, col))
		}
		record.Attendance[subject] = attendance
	}

	record.SGPA = SGPA(record.Marks)
	record.Grade = AssignGrade(record.SGPA)
	record.Suggestion = Suggest(record.SGPA, record.Attendance, schema.Subjects)
	return record
}

// parseMark reads a marks cell. Blank cells are Absent; text that is not a
// number is a numeric 0, which is a different state from Absent.
func parseMark(cell string) models.Mark {
	if isMissing(cell) {
		return models.Absent()
	}
	return models.Numeric(parseNumber(cell))
}

// parseNumber reads a numeric cell, falling back to 0. Values beyond
// maxCellMagnitude are treated as unreadable.
func parseNumber(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > maxCellMagnitude {
		return 0
	}
	return v
}

func isMissing(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return true
	}
	_, ok := naTokens[trimmed]
	return ok
}
