package models

// Trace types understood by the chart renderer
const (
	TraceBar     = "bar"
	TracePie     = "pie"
	TraceScatter = "scatter"
	TraceHeatmap = "heatmap"
)

// Trace is one data series of a figure. Field names follow the plotly.js
// figure schema so the page can hand figures to the renderer untouched.
type Trace struct {
	Type         string      `json:"type"`
	Name         string      `json:"name,omitempty"`
	X            interface{} `json:"x,omitempty"` // []string or []float64
	Y            interface{} `json:"y,omitempty"` // []string or []float64
	Z            [][]float64 `json:"z,omitempty"`
	Labels       []string    `json:"labels,omitempty"`
	Values       []int       `json:"values,omitempty"`
	Text         []string    `json:"text,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	TextPosition string      `json:"textposition,omitempty"`
	Hole         float64     `json:"hole,omitempty"`
	Colorscale   string      `json:"colorscale,omitempty"`
	HoverOnGaps  *bool       `json:"hoverongaps,omitempty"`
}

// Axis configures one chart axis
type Axis struct {
	Title string    `json:"title,omitempty"`
	Range []float64 `json:"range,omitempty"` // [min, max]
}

// Layout holds figure-level presentation settings
type Layout struct {
	Title   string `json:"title,omitempty"`
	XAxis   *Axis  `json:"xaxis,omitempty"`
	YAxis   *Axis  `json:"yaxis,omitempty"`
	BarMode string `json:"barmode,omitempty"`
}

// Figure is a declarative chart: data series plus layout, never a rendered image
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// EmptyFigure returns a figure with no data and no axes
func EmptyFigure() Figure {
	return Figure{Data: []Trace{}}
}

// IsEmpty reports whether the figure carries no data
func (f Figure) IsEmpty() bool {
	return len(f.Data) == 0
}

// StudentChart pairs a student with their attendance figure
type StudentChart struct {
	Name   string `json:"name"`
	Figure Figure `json:"figure"`
}

// Charts is the full set of chart series produced for a report
type Charts struct {
	SGPA          Figure         `json:"sgpa"`
	Grade         Figure         `json:"grade"`
	AttVsSGPA     Figure         `json:"att_vs_sgpa"`
	Heatmap       Figure         `json:"heatmap"`
	Stacked       Figure         `json:"stacked"`
	PerStudentAtt []StudentChart `json:"per_student_att"`
}
