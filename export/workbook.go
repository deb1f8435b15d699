// Package export writes a report as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// Sheet names in the exported workbook
const (
	SummarySheet  = "Summary"
	StudentsSheet = "Students"
)

// ContentType is the MIME type of the exported workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteWorkbook writes the report's class summary, student table and an SGPA
// column chart. A report without students gets header rows and no chart.
func WriteWorkbook(report *models.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(StudentsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", StudentsSheet, err)
	}

	if err := writeSummary(f, report.Summary); err != nil {
		return err
	}
	rows, err := writeStudents(f, report)
	if err != nil {
		return err
	}
	if rows > 0 {
		if err := addSGPAChart(f, rows, len(report.Subjects)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, summary models.ClassSummary) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Average SGPA", summary.AvgSGPA},
		{"Highest SGPA", summary.MaxSGPA},
		{"Lowest SGPA", summary.MinSGPA},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return nil
}

// StudentHeader returns the Students sheet header for the given subjects
func StudentHeader(subjects []string) []interface{} {
	header := []interface{}{"Name"}
	for _, s := range subjects {
		header = append(header, s)
	}
	header = append(header, "Total", "SGPA", "Grade", "Absents")
	for _, s := range subjects {
		header = append(header, s+" Attendance (%)")
	}
	return append(header, "Suggestion")
}

// studentRow lays out one record in StudentHeader order
func studentRow(r models.StudentRecord, subjects []string) []interface{} {
	row := []interface{}{r.Name}
	for _, m := range r.Marks {
		if m.IsAbsent() {
			row = append(row, models.AbsentLabel)
		} else {
			row = append(row, m.Value())
		}
	}
	row = append(row, r.Total, r.SGPA, r.Grade, r.AbsentCount)
	for _, s := range subjects {
		row = append(row, r.Attendance[s])
	}
	return append(row, r.Suggestion)
}

// writeStudents returns the number of student rows written
func writeStudents(f *excelize.File, report *models.Report) (int, error) {
	header := StudentHeader(report.Subjects)
	if err := f.SetSheetRow(StudentsSheet, "A1", &header); err != nil {
		return 0, fmt.Errorf("failed to write student header: %w", err)
	}
	records := report.Students.Records()
	for i, r := range records {
		row := studentRow(r, report.Subjects)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		if err := f.SetSheetRow(StudentsSheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write student %s: %w", r.Name, err)
		}
	}
	return len(records), nil
}

// addSGPAChart plots the SGPA column of the Students sheet
func addSGPAChart(f *excelize.File, rows, subjects int) error {
	// SGPA sits after Name, one column per subject, and Total
	sgpaCol, err := excelize.ColumnNumberToName(subjects + 3)
	if err != nil {
		return err
	}
	last := rows + 1
	minY, maxY := 0.0, 10.0
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$%s$1", StudentsSheet, sgpaCol),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", StudentsSheet, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", StudentsSheet, sgpaCol, sgpaCol, last),
		}},
		Title:  []excelize.RichTextRun{{Text: "SGPA Comparison"}},
		YAxis:  excelize.ChartAxis{Minimum: &minY, Maximum: &maxY},
		Legend: excelize.ChartLegend{Position: "none"},
	}
	if err := f.AddChart(SummarySheet, "D2", chart); err != nil {
		return fmt.Errorf("failed to add sgpa chart: %w", err)
	}
	return nil
}
