package selection

import (
	"github.com/samber/lo"

	"github.com/Melanie472/f1laps/pkg/model"
)

// Series is the lap list of one driver in one session, ordered by lap number.
type Series []model.Lap

// LapRange is an inclusive lap number range.
type LapRange struct {
	From int
	To   int
}

func (r LapRange) Contains(lap int) bool {
	return r.From <= lap && lap <= r.To
}

// Bounds returns the lowest and highest lap number of the series.
func (s Series) Bounds() (LapRange, error) {
	if len(s) == 0 {
		return LapRange{}, ErrEmptySeries
	}
	lapNumbers := lo.Map(s, func(item model.Lap, _ int) int { return item.LapNumber })
	return LapRange{From: lo.Min(lapNumbers), To: lo.Max(lapNumbers)}, nil
}

// InRange returns all and only the laps inside r.
func (s Series) InRange(r LapRange) Series {
	return lo.Filter(s, func(item model.Lap, _ int) bool {
		return r.Contains(item.LapNumber)
	})
}

// ClampRange moves r into bounds. An inverted range is swapped first.
func ClampRange(r, bounds LapRange) LapRange {
	if r.From > r.To {
		r.From, r.To = r.To, r.From
	}
	r.From = max(bounds.From, min(r.From, bounds.To))
	r.To = max(bounds.From, min(r.To, bounds.To))
	return r
}
