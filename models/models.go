package models

import (
	"encoding/json"
	"fmt"
)

// AbsentLabel is how an Absent mark is displayed and serialized
const AbsentLabel = "Absent"

// Mark is a single subject score: either a number or Absent
type Mark struct {
	value  float64
	absent bool
}

// Numeric returns a mark holding a score
func Numeric(v float64) Mark {
	return Mark{value: v}
}

// Absent returns the missing-mark sentinel
func Absent() Mark {
	return Mark{absent: true}
}

// IsAbsent reports whether the mark is the Absent sentinel
func (m Mark) IsAbsent() bool {
	return m.absent
}

// Value returns the effective numeric value; Absent counts as 0
func (m Mark) Value() float64 {
	if m.absent {
		return 0
	}
	return m.value
}

// String renders the mark the way the students table shows it
func (m Mark) String() string {
	if m.absent {
		return AbsentLabel
	}
	return fmt.Sprintf("%g", m.value)
}

// MarshalJSON encodes a score as a number and Absent as the string "Absent"
func (m Mark) MarshalJSON() ([]byte, error) {
	if m.absent {
		return json.Marshal(AbsentLabel)
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON accepts a number or the string "Absent"
func (m *Mark) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != AbsentLabel {
			return fmt.Errorf("invalid mark %q", s)
		}
		*m = Absent()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid mark: %w", err)
	}
	*m = Numeric(v)
	return nil
}

// StudentRecord is the per-student academic summary
type StudentRecord struct {
	Name        string             `json:"name"`       // Value of the first column, "Unknown" when blank
	Marks       []Mark             `json:"marks"`      // One entry per subject, canonical order
	Total       float64            `json:"total"`      // Sum of marks, Absent counted as 0
	SGPA        float64            `json:"sgpa"`       // 0-10 scale
	Grade       string             `json:"grade"`      // Letter grade derived from SGPA
	AbsentCount int                `json:"absents"`    // Subjects with a blank mark
	Attendance  map[string]float64 `json:"attendance"` // Subject -> percentage, 0 when missing
	Suggestion  string             `json:"suggestion"` // Coaching message
}

// ClassSummary aggregates SGPA over all students
type ClassSummary struct {
	AvgSGPA float64 `json:"avg_sgpa"`
	MaxSGPA float64 `json:"max_sgpa"`
	MinSGPA float64 `json:"min_sgpa"`
}

// Report is everything produced from one uploaded table
type Report struct {
	ID       string       `json:"id"`       // Derived from the uploaded content, empty if not set
	Subjects []string     `json:"subjects"` // Canonical subject order
	Students *StudentSet  `json:"students"`
	Charts   Charts       `json:"charts"`
	Summary  ClassSummary `json:"class_summary"`
}
