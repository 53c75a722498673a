// Package chart builds renderer independent line chart specifications of lap
// times and renders them with go-chart.
package chart

type (
	// Point is one lap: X is the lap number, Y the lap duration in seconds.
	Point struct {
		X float64 `json:"x" yaml:"x"`
		Y float64 `json:"y" yaml:"y"`
	}
	Series struct {
		Name   string  `json:"name" yaml:"name"`
		Color  string  `json:"color" yaml:"color"` // hex, e.g. #1f77b4
		Points []Point `json:"points" yaml:"points"`
	}
	Range struct {
		Min float64 `json:"min" yaml:"min"`
		Max float64 `json:"max" yaml:"max"`
	}
	Spec struct {
		Title      string   `json:"title" yaml:"title"`
		XAxisTitle string   `json:"xAxisTitle" yaml:"xAxisTitle"`
		YAxisTitle string   `json:"yAxisTitle" yaml:"yAxisTitle"`
		Series     []Series `json:"series" yaml:"series"`
		// YRange is nil when the y axis scales to the data
		YRange *Range `json:"yRange,omitempty" yaml:"yRange,omitempty"`
	}
)

const (
	ColorPrimary = "#1f77b4"
	ColorCompare = "#ff0000"
)

func (s *Spec) Zoomed() bool {
	return s.YRange != nil
}
