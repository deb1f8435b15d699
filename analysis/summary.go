package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// Summarize computes class-wide SGPA statistics; all zero for an empty class
func Summarize(students *models.StudentSet) models.ClassSummary {
	if students.Len() == 0 {
		return models.ClassSummary{}
	}
	sgpas := make(stats.Float64Data, 0, students.Len())
	for _, r := range students.Records() {
		sgpas = append(sgpas, r.SGPA)
	}

	// errors only occur on empty input, ruled out above
	avg, _ := sgpas.Mean()
	maxSGPA, _ := sgpas.Max()
	minSGPA, _ := sgpas.Min()
	return models.ClassSummary{
		AvgSGPA: round2(avg),
		MaxSGPA: round2(maxSGPA),
		MinSGPA: round2(minSGPA),
	}
}
