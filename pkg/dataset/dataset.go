// Package dataset holds the tables fetched from OpenF1 and the steps that
// turn the raw feed into analysable lap series.
package dataset

import (
	"errors"

	"github.com/Melanie472/f1laps/pkg/model"
)

var (
	ErrDuplicateWarmupLap = errors.New("more than one warm-up lap in series")
	ErrOrphanLap          = errors.New("lap without matching driver")
)

// Dataset is the result of a fetch. Once loaded it is shared and must be
// treated as read-only.
type Dataset struct {
	Sessions   []model.Session
	Drivers    []model.Driver
	Laps       []model.Lap
	normalized bool
}

// Query selects the sessions to load.
type Query struct {
	Year        int
	SessionName string
}

func (d *Dataset) Normalized() bool {
	return d.normalized
}

// Normalize removes the warm-up laps and renumbers the remaining ones.
// Calling it on a normalized dataset does nothing.
func (d *Dataset) Normalize() error {
	if d.normalized {
		return nil
	}
	laps, err := NormalizeLaps(d.Laps)
	if err != nil {
		return err
	}
	d.Laps = laps
	d.normalized = true
	return nil
}

// Validate reports laps whose (session, driver) pair has no driver entry.
// The returned error wraps ErrOrphanLap once per affected series.
func (d *Dataset) Validate() error {
	known := make(map[model.SeriesKey]struct{}, len(d.Drivers))
	for _, drv := range d.Drivers {
		known[drv.SeriesKey()] = struct{}{}
	}
	reported := map[model.SeriesKey]struct{}{}
	var errs []error
	for _, l := range d.Laps {
		k := l.SeriesKey()
		if _, ok := known[k]; ok {
			continue
		}
		if _, ok := reported[k]; ok {
			continue
		}
		reported[k] = struct{}{}
		errs = append(errs, orphanErr(k))
	}
	return errors.Join(errs...)
}
