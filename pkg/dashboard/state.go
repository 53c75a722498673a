package dashboard

import (
	"github.com/Melanie472/f1laps/pkg/analysis"
	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/pkg/selection"
)

// State is the outcome of one render pass. It is derived from the user input
// of that pass only and never reused.
type State struct {
	Location string
	Session  model.Session
	Driver   model.Driver
	Series   selection.Series // laps of Driver in LapRange
	LapRange selection.LapRange
	Zoom     bool
	Compare  bool
	Fastest  *analysis.FastestLap

	CompareDriver  model.Driver
	CompareSeries  selection.Series // laps of CompareDriver in LapRange
	CompareFastest *analysis.FastestLap

	// NoData is set when the selection yields nothing to chart
	NoData error
}
