package analysis

import (
	"strconv"
	"strings"

	"github.com/Akash-2201/Student-data-analysis/models"
)

// Grade letters, best first
const (
	GradeO      = "O"
	GradeAPlus  = "A+"
	GradeA      = "A"
	GradeB      = "B"
	GradeC      = "C"
	GradeF      = "F"
	lowAttLimit = 75.0
)

// GradeScale lists every grade from best to worst
var GradeScale = []string{GradeO, GradeAPlus, GradeA, GradeB, GradeC, GradeF}

// gradeBands maps minimum SGPA to grade, evaluated top down
var gradeBands = []struct {
	min   float64
	grade string
}{
	{9, GradeO},
	{8, GradeAPlus},
	{7, GradeA},
	{6, GradeB},
	{5, GradeC},
}

var suggestionBands = []struct {
	min  float64
	text string
}{
	{9, "Excellent! Keep it up!"},
	{8, "Good! You can improve further to reach 9+."},
	{7, "Nice! Try to focus a bit more on weak areas."},
	{6, "Average performance. Work harder to improve."},
}

const fallbackSuggestion = "Need serious improvement. Focus on your studies."

// SGPA is the mean mark divided by 10, rounded to two decimals.
// Marks are assumed to be out of 100 and are not range checked.
func SGPA(marks []models.Mark) float64 {
	if len(marks) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range marks {
		sum += m.Value()
	}
	return round2(sum / float64(len(marks)) / 10)
}

// AssignGrade maps an SGPA to its letter grade
func AssignGrade(sgpa float64) string {
	for _, band := range gradeBands {
		if sgpa >= band.min {
			return band.grade
		}
	}
	return GradeF
}

// Suggest builds the coaching message for a student. Any subject with
// attendance under 75 is named in a trailing warning, in subject order.
func Suggest(sgpa float64, attendance map[string]float64, subjects []string) string {
	text := fallbackSuggestion
	for _, band := range suggestionBands {
		if sgpa >= band.min {
			text = band.text
			break
		}
	}

	var low []string
	for _, subject := range subjects {
		if attendance[subject] < lowAttLimit {
			low = append(low, subject)
		}
	}
	if len(low) > 0 {
		text += " | ⚠ Improve attendance in: " + strings.Join(low, ", ") + "."
	}
	return text
}

// round2 rounds the exact binary value to two decimals, ties to even.
// Scaling by 100 first would round 7.00499... up to 7.01.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return 0
	}
	return r
}
