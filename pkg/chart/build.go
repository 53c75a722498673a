package chart

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Melanie472/f1laps/pkg/analysis"
	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/pkg/selection"
)

// ZoomWindow is the distance in seconds between the fastest lap and the
// y axis bounds of a zoomed chart.
const ZoomWindow = 4

const (
	titleNormal = "Lap times"
	titleZoomed = "Lap times (zoomed)"
	xAxisTitle  = "Lap"
	yAxisTitle  = "Lap time (s)"
)

type Options struct {
	Primary     selection.Series // range filtered laps of the selected driver
	PrimaryName string
	// Zoom clamps the y axis around the fastest lap of Primary.
	Zoom bool
	// Compare is drawn as overlay when CompareName is set.
	Compare     selection.Series
	CompareName string
}

// Build creates the chart of the primary series and the optional overlay.
// Zoom requires a lap time in Primary, otherwise the analysis error is returned.
func Build(opts Options) (*Spec, error) {
	spec := &Spec{
		Title:      titleNormal,
		XAxisTitle: xAxisTitle,
		YAxisTitle: yAxisTitle,
		Series: []Series{{
			Name:   opts.PrimaryName,
			Color:  ColorPrimary,
			Points: toPoints(opts.Primary),
		}},
	}
	if opts.Zoom {
		fastest, err := analysis.Fastest(opts.Primary)
		if err != nil {
			return nil, err
		}
		r := ZoomRange(fastest.Duration)
		spec.YRange = &r
		spec.Title = titleZoomed
	}
	if opts.CompareName != "" {
		spec.Series = append(spec.Series, Series{
			Name:   opts.CompareName,
			Color:  ColorCompare,
			Points: toPoints(opts.Compare),
		})
	}
	return spec, nil
}

// ZoomRange returns [fastest-ZoomWindow, fastest+ZoomWindow].
// The arithmetic is decimal so 88.1 yields exactly 84.1 and 92.1.
func ZoomRange(fastest float64) Range {
	f := decimal.NewFromFloat(fastest)
	w := decimal.NewFromInt(ZoomWindow)
	lower, _ := f.Sub(w).Float64()
	upper, _ := f.Add(w).Float64()
	return Range{Min: lower, Max: upper}
}

// toPoints skips laps without a recorded duration.
func toPoints(s selection.Series) []Point {
	return lo.FilterMap(s, func(item model.Lap, _ int) (Point, bool) {
		d, ok := item.LapDuration.Get()
		return Point{X: float64(item.LapNumber), Y: d}, ok
	})
}
