package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akash-2201/Student-data-analysis/models"
)

func sampleTable() *models.RawTable {
	return &models.RawTable{
		Columns: []string{"Name", "Math_marks", "Math_attendance", "Eng_marks", "Eng_attendance"},
		Rows: [][]string{
			{"Alice", "90", "80", "", "60"},
			{"Bob", "95", "90", "85", "100"},
			{"Cara", "60", "70", "70", "90"},
		},
	}
}

func sampleStudents(t *testing.T) (*models.StudentSet, []string) {
	t.Helper()
	students, subjects, err := Normalize(sampleTable())
	require.NoError(t, err)
	return students, subjects
}

func TestBuildChartsSGPA(t *testing.T) {
	students, subjects := sampleStudents(t)
	charts := BuildCharts(students, subjects)

	require.Len(t, charts.SGPA.Data, 1)
	bar := charts.SGPA.Data[0]
	assert.Equal(t, models.TraceBar, bar.Type)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, bar.X)
	assert.Equal(t, []float64{4.5, 9, 6.5}, bar.Y)
	require.NotNil(t, charts.SGPA.Layout.YAxis)
	assert.Equal(t, []float64{0, 10}, charts.SGPA.Layout.YAxis.Range)
}

func TestBuildChartsGrade(t *testing.T) {
	table := &models.RawTable{
		Columns: []string{"Name", "Math_marks"},
		Rows: [][]string{
			{"a", "95"}, {"b", "40"}, {"c", "92"}, {"d", "81"}, {"e", "10"}, {"f", "99"},
		},
	}
	students, subjects, err := Normalize(table)
	require.NoError(t, err)

	pie := BuildCharts(students, subjects).Grade
	require.Len(t, pie.Data, 1)
	assert.Equal(t, models.TracePie, pie.Data[0].Type)
	assert.Equal(t, []string{GradeO, GradeF, GradeAPlus}, pie.Data[0].Labels)
	assert.Equal(t, []int{3, 2, 1}, pie.Data[0].Values)
	assert.Equal(t, 0.2, pie.Data[0].Hole)
}

func TestBuildChartsGradeTiesKeepFirstAppearance(t *testing.T) {
	students, subjects := sampleStudents(t)

	pie := BuildCharts(students, subjects).Grade
	require.Len(t, pie.Data, 1)
	assert.Equal(t, []string{GradeF, GradeO, GradeB}, pie.Data[0].Labels)
	assert.Equal(t, []int{1, 1, 1}, pie.Data[0].Values)

	table := &models.RawTable{
		Columns: []string{"Name", "Math_marks"},
		Rows:    [][]string{{"a", "40"}, {"b", "95"}, {"c", "91"}, {"d", "30"}, {"e", "85"}},
	}
	students, subjects, err := Normalize(table)
	require.NoError(t, err)
	pie = BuildCharts(students, subjects).Grade
	assert.Equal(t, []string{GradeF, GradeO, GradeAPlus}, pie.Data[0].Labels)
	assert.Equal(t, []int{2, 2, 1}, pie.Data[0].Values)
}

func TestBuildChartsScatter(t *testing.T) {
	students, subjects := sampleStudents(t)
	scatter := BuildCharts(students, subjects).AttVsSGPA

	require.Len(t, scatter.Data, 1)
	trace := scatter.Data[0]
	assert.Equal(t, models.TraceScatter, trace.Type)
	assert.Equal(t, []float64{70, 95, 80}, trace.X)
	assert.Equal(t, []float64{4.5, 9, 6.5}, trace.Y)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, trace.Text)
	assert.Equal(t, "markers+text", trace.Mode)
}

func TestBuildChartsHeatmapAndStacked(t *testing.T) {
	students, subjects := sampleStudents(t)
	charts := BuildCharts(students, subjects)

	require.Len(t, charts.Heatmap.Data, 1)
	heat := charts.Heatmap.Data[0]
	assert.Equal(t, [][]float64{{0, 85, 70}, {90, 95, 60}}, heat.Z)
	assert.Equal(t, []string{"Eng", "Math"}, heat.Y)
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, heat.X)

	require.Len(t, charts.Stacked.Data, 2)
	assert.Equal(t, "stack", charts.Stacked.Layout.BarMode)
	assert.Equal(t, "Eng", charts.Stacked.Data[0].Name)
	assert.Equal(t, []float64{0, 85, 70}, charts.Stacked.Data[0].Y)
	assert.Equal(t, "Math", charts.Stacked.Data[1].Name)
	assert.Equal(t, []float64{90, 95, 60}, charts.Stacked.Data[1].Y)
}

func TestBuildChartsPerStudentAttendance(t *testing.T) {
	students, subjects := sampleStudents(t)
	per := BuildCharts(students, subjects).PerStudentAtt

	require.Len(t, per, 3)
	assert.Equal(t, "Alice", per[0].Name)
	assert.Equal(t, []string{"Eng", "Math"}, per[0].Figure.Data[0].X)
	assert.Equal(t, []float64{60, 80}, per[0].Figure.Data[0].Y)
	assert.Equal(t, []float64{0, 100}, per[0].Figure.Layout.YAxis.Range)
	assert.Equal(t, "Cara - Attendance by Subject", per[2].Figure.Layout.Title)
}

func TestBuildChartsEmpty(t *testing.T) {
	charts := BuildCharts(models.NewStudentSet(), []string{"Eng", "Math"})

	for _, fig := range []models.Figure{charts.SGPA, charts.Grade, charts.AttVsSGPA, charts.Heatmap, charts.Stacked} {
		assert.True(t, fig.IsEmpty())
		assert.Nil(t, fig.Layout.XAxis)
		assert.Nil(t, fig.Layout.YAxis)
	}
	assert.NotNil(t, charts.PerStudentAtt)
	assert.Empty(t, charts.PerStudentAtt)

	data, err := json.Marshal(charts.SGPA)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"layout":{}}`, string(data))
}

func TestAverageAttendance(t *testing.T) {
	assert.Equal(t, 0.0, AverageAttendance(models.StudentRecord{}))
	assert.Equal(t, 75.0, AverageAttendance(models.StudentRecord{
		Attendance: map[string]float64{"a": 50, "b": 100},
	}))
}
