package dashboard

import (
	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/selection"
)

// Surface renders widgets and reports the values chosen by the user.
// The key identifies a widget across render passes.
type Surface interface {
	Heading(text string)
	Text(text string)
	Warning(text string)
	// SelectOne returns the chosen option. Surfaces default to the first option.
	SelectOne(key, label string, options []string) string
	// SelectRange returns the chosen inclusive range. Surfaces default to bounds.
	SelectRange(key, label string, bounds selection.LapRange) selection.LapRange
	Checkbox(key, label string) bool
	Chart(spec *chart.Spec)
}

// widget keys
const (
	KeyLocation      = "location"
	KeyDriver        = "driver"
	KeyLaps          = "laps"
	KeyZoom          = "zoom"
	KeyCompare       = "compare"
	KeyCompareDriver = "driver2"
)
