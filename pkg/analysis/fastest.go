package analysis

import (
	"errors"

	"github.com/Melanie472/f1laps/pkg/selection"
)

// ErrNoLapTimes signals a non-empty series without any recorded lap duration.
var ErrNoLapTimes = errors.New("no lap times in range")

type FastestLap struct {
	LapNumber int
	Duration  float64 // seconds
}

// Fastest returns the lap with the minimum recorded duration.
// Laps without duration are ignored; on ties the earlier lap wins.
// An empty series yields selection.ErrEmptySeries.
func Fastest(s selection.Series) (FastestLap, error) {
	if len(s) == 0 {
		return FastestLap{}, selection.ErrEmptySeries
	}
	var (
		ret   FastestLap
		found bool
	)
	for _, l := range s {
		d, ok := l.LapDuration.Get()
		if !ok {
			continue
		}
		if !found || d < ret.Duration || (d == ret.Duration && l.LapNumber < ret.LapNumber) {
			ret = FastestLap{LapNumber: l.LapNumber, Duration: d}
			found = true
		}
	}
	if !found {
		return FastestLap{}, ErrNoLapTimes
	}
	return ret, nil
}

// IsNoData reports whether err is one of the recoverable "nothing to show" conditions.
func IsNoData(err error) bool {
	return errors.Is(err, selection.ErrEmptySeries) || errors.Is(err, ErrNoLapTimes)
}
