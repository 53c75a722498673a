package dataset

import (
	"fmt"

	"github.com/Melanie472/f1laps/pkg/model"
)

// WarmupLap is the lap number the feed uses for the formation lap.
const WarmupLap = 1

// NormalizeLaps drops the warm-up lap of every series and shifts the
// remaining lap numbers down by one, so the first racing lap is lap 1.
// The input is not modified.
func NormalizeLaps(laps []model.Lap) ([]model.Lap, error) {
	seen := map[model.SeriesKey]struct{}{}
	ret := make([]model.Lap, 0, len(laps))
	for _, l := range laps {
		if l.LapNumber == WarmupLap {
			k := l.SeriesKey()
			if _, ok := seen[k]; ok {
				return nil, fmt.Errorf("%w: session %d driver %d",
					ErrDuplicateWarmupLap, k.SessionKey, k.DriverNumber)
			}
			seen[k] = struct{}{}
			continue
		}
		l.LapNumber--
		ret = append(ret, l)
	}
	return ret, nil
}

func orphanErr(k model.SeriesKey) error {
	return fmt.Errorf("%w: session %d driver %d", ErrOrphanLap, k.SessionKey, k.DriverNumber)
}
