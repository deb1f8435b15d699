// Package analysis turns an uploaded marks table into student summaries and
// chart-ready series. It is pure: no I/O, no logging, no shared state.
package analysis

import (
	"github.com/Akash-2201/Student-data-analysis/models"
)

// BuildReport runs the full pipeline on a table. Running it twice on the
// same table gives identical reports.
func BuildReport(table *models.RawTable) (*models.Report, error) {
	students, subjects, err := Normalize(table)
	if err != nil {
		return nil, err
	}
	return &models.Report{
		Subjects: subjects,
		Students: students,
		Charts:   BuildCharts(students, subjects),
		Summary:  Summarize(students),
	}, nil
}
