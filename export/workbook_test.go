package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Akash-2201/Student-data-analysis/analysis"
	"github.com/Akash-2201/Student-data-analysis/models"
)

func buildReport(t *testing.T, rows [][]string) *models.Report {
	t.Helper()
	report, err := analysis.BuildReport(&models.RawTable{
		Columns: []string{"Name", "Math_marks", "Math_attendance", "Eng_marks", "Eng_attendance"},
		Rows:    rows,
	})
	require.NoError(t, err)
	return report
}

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteWorkbook(t *testing.T) {
	report := buildReport(t, [][]string{
		{"Alice", "90", "80", "", "60"},
		{"Bob", "95", "90", "85", "100"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(report, &buf))
	f := openWorkbook(t, &buf)

	assert.Equal(t, []string{SummarySheet, StudentsSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Average SGPA", "6.75"}, summary[1])
	assert.Equal(t, []string{"Highest SGPA", "9"}, summary[2])
	assert.Equal(t, []string{"Lowest SGPA", "4.5"}, summary[3])

	students, err := f.GetRows(StudentsSheet)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, []string{
		"Name", "Eng", "Math", "Total", "SGPA", "Grade", "Absents",
		"Eng Attendance (%)", "Math Attendance (%)", "Suggestion",
	}, students[0])
	assert.Equal(t, []string{"Alice", "Absent", "90", "90", "4.5", "F", "1", "60", "80"}, students[1][:9])
	assert.Contains(t, students[1][9], "Improve attendance in: Eng.")
	assert.Equal(t, "Bob", students[2][0])
}

func TestWriteWorkbookEmptyReport(t *testing.T) {
	report := buildReport(t, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(report, &buf))
	f := openWorkbook(t, &buf)

	students, err := f.GetRows(StudentsSheet)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Name", students[0][0])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Average SGPA", "0"}, summary[1])
}

func TestStudentHeader(t *testing.T) {
	assert.Equal(t,
		[]interface{}{"Name", "Total", "SGPA", "Grade", "Absents", "Suggestion"},
		StudentHeader(nil))
}
