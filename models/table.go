package models

// RawTable is an uploaded sheet: a header row and string cells.
// Rows may be shorter than Columns; missing trailing cells read as blank.
type RawTable struct {
	Columns []string   // Header names, position 0 is the student name column
	Rows    [][]string // Data rows
}

// Cell returns the value of column col in row, or "" when the row is short
func (t *RawTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
