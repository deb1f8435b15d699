package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// BuildCharts shapes the student records into chart series. Students appear in
// the set's insertion order and subjects in canonical order. With no students
// every figure is empty.
func BuildCharts(students *models.StudentSet, subjects []string) models.Charts {
	if students.Len() == 0 {
		return models.Charts{
			SGPA:          models.EmptyFigure(),
			Grade:         models.EmptyFigure(),
			AttVsSGPA:     models.EmptyFigure(),
			Heatmap:       models.EmptyFigure(),
			Stacked:       models.EmptyFigure(),
			PerStudentAtt: []models.StudentChart{},
		}
	}

	records := students.Records()
	names := students.Names()
	sgpas := make([]float64, len(records))
	for i, r := range records {
		sgpas[i] = r.SGPA
	}
	matrix := marksMatrix(records, subjects)

	return models.Charts{
		SGPA:          sgpaFigure(names, sgpas),
		Grade:         gradeFigure(records),
		AttVsSGPA:     attendanceScatter(records, names, sgpas),
		Heatmap:       heatmapFigure(matrix, names, subjects),
		Stacked:       stackedFigure(matrix, names, subjects),
		PerStudentAtt: perStudentAttendance(records, subjects),
	}
}

func sgpaFigure(names []string, sgpas []float64) models.Figure {
	return models.Figure{
		Data: []models.Trace{{Type: models.TraceBar, X: names, Y: sgpas}},
		Layout: models.Layout{
			Title: "SGPA Comparison",
			YAxis: &models.Axis{Range: []float64{0, 10}},
		},
	}
}

// gradeFigure counts grades, most frequent first; ties keep the order in
// which each grade first appears among the students
func gradeFigure(records []models.StudentRecord) models.Figure {
	counts := GradeCounts(records)
	labels := make([]string, 0, len(counts))
	for _, r := range records {
		if !containsString(labels, r.Grade) {
			labels = append(labels, r.Grade)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})
	values := make([]int, len(labels))
	for i, g := range labels {
		values[i] = counts[g]
	}

	return models.Figure{
		Data:   []models.Trace{{Type: models.TracePie, Labels: labels, Values: values, Hole: 0.2}},
		Layout: models.Layout{Title: "Grade Distribution"},
	}
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// GradeCounts tallies the grade of every record
func GradeCounts(records []models.StudentRecord) map[string]int {
	counts := make(map[string]int, len(GradeScale))
	for _, r := range records {
		counts[r.Grade]++
	}
	return counts
}

func attendanceScatter(records []models.StudentRecord, names []string, sgpas []float64) models.Figure {
	avgAtt := make([]float64, len(records))
	for i, r := range records {
		avgAtt[i] = AverageAttendance(r)
	}
	return models.Figure{
		Data: []models.Trace{{
			Type:         models.TraceScatter,
			X:            avgAtt,
			Y:            sgpas,
			Mode:         "markers+text",
			Text:         names,
			TextPosition: "top center",
		}},
		Layout: models.Layout{
			Title: "Average Attendance vs SGPA",
			XAxis: &models.Axis{Title: "Avg Attendance (%)"},
			YAxis: &models.Axis{Title: "SGPA"},
		},
	}
}

// AverageAttendance is the mean attendance over a student's subjects, 0 with none
func AverageAttendance(r models.StudentRecord) float64 {
	values := make([]float64, 0, len(r.Attendance))
	for _, v := range r.Attendance {
		values = append(values, v)
	}
	// sorted so the float sum does not depend on map iteration order
	sort.Float64s(values)
	avg, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return avg
}

// marksMatrix returns numeric marks indexed [subject][student], Absent as 0
func marksMatrix(records []models.StudentRecord, subjects []string) [][]float64 {
	matrix := make([][]float64, len(subjects))
	for si := range subjects {
		row := make([]float64, len(records))
		for ri, r := range records {
			if si < len(r.Marks) {
				row[ri] = r.Marks[si].Value()
			}
		}
		matrix[si] = row
	}
	return matrix
}

func heatmapFigure(matrix [][]float64, names, subjects []string) models.Figure {
	hoverOnGaps := false
	return models.Figure{
		Data: []models.Trace{{
			Type:        models.TraceHeatmap,
			Z:           matrix,
			X:           names,
			Y:           subjects,
			Colorscale:  "YlGnBu",
			HoverOnGaps: &hoverOnGaps,
		}},
		Layout: models.Layout{Title: "Subject-wise Marks Heatmap (Subjects as rows)"},
	}
}

func stackedFigure(matrix [][]float64, names, subjects []string) models.Figure {
	traces := make([]models.Trace, len(subjects))
	for i, subject := range subjects {
		traces[i] = models.Trace{Type: models.TraceBar, Name: subject, X: names, Y: matrix[i]}
	}
	return models.Figure{
		Data:   traces,
		Layout: models.Layout{Title: "Subject-wise Marks (Stacked)", BarMode: "stack"},
	}
}

func perStudentAttendance(records []models.StudentRecord, subjects []string) []models.StudentChart {
	charts := make([]models.StudentChart, len(records))
	for i, r := range records {
		values := make([]float64, len(subjects))
		for j, subject := range subjects {
			values[j] = r.Attendance[subject]
		}
		charts[i] = models.StudentChart{
			Name: r.Name,
			Figure: models.Figure{
				Data: []models.Trace{{Type: models.TraceBar, X: subjects, Y: values}},
				Layout: models.Layout{
					Title: r.Name + " - Attendance by Subject",
					YAxis: &models.Axis{Range: []float64{0, 100}},
				},
			},
		}
	}
	return charts
}
