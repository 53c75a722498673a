// Package selection resolves user choices (location, driver name, lap range)
// against a dataset and narrows the lap table accordingly.
package selection

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/model"
)

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrAmbiguousLocation = errors.New("location matches more than one session")
	ErrDriverNotFound    = errors.New("driver not found in session")
	ErrAmbiguousDriver   = errors.New("driver name matches more than one driver number")
	ErrEmptySeries       = errors.New("no laps available")
)

type Selector struct {
	ds *dataset.Dataset
}

func New(ds *dataset.Dataset) *Selector {
	return &Selector{ds: ds}
}

// Locations returns the locations of all sessions in feed order.
func (s *Selector) Locations() []string {
	return lo.Uniq(lo.Map(s.ds.Sessions, func(item model.Session, _ int) string {
		return item.Location
	}))
}

// ResolveSession finds the session held at location (exact match).
func (s *Selector) ResolveSession(location string) (model.Session, error) {
	matches := lo.Filter(s.ds.Sessions, func(item model.Session, _ int) bool {
		return item.Location == location
	})
	switch len(matches) {
	case 0:
		return model.Session{}, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	case 1:
		return matches[0], nil
	default:
		return model.Session{}, fmt.Errorf("%w: %q (%v)", ErrAmbiguousLocation, location,
			lo.Map(matches, func(item model.Session, _ int) int { return item.SessionKey }))
	}
}

func (s *Selector) sessionDrivers(sessionKey int) []model.Driver {
	return lo.Filter(s.ds.Drivers, func(item model.Driver, _ int) bool {
		return item.SessionKey == sessionKey
	})
}

// DriverNames returns the unique display names of the drivers of a session.
func (s *Selector) DriverNames(sessionKey int) []string {
	return lo.Uniq(lo.Map(s.sessionDrivers(sessionKey), func(item model.Driver, _ int) string {
		return item.BroadcastName
	}))
}

// ResolveDriver finds the driver of a session by display name (exact match).
func (s *Selector) ResolveDriver(sessionKey int, name string) (model.Driver, error) {
	matches := lo.UniqBy(
		lo.Filter(s.sessionDrivers(sessionKey), func(item model.Driver, _ int) bool {
			return item.BroadcastName == name
		}),
		func(item model.Driver) int { return item.DriverNumber })
	switch len(matches) {
	case 0:
		return model.Driver{}, fmt.Errorf("%w: %q (session %d)", ErrDriverNotFound, name, sessionKey)
	case 1:
		return matches[0], nil
	default:
		return model.Driver{}, fmt.Errorf("%w: %q (session %d)", ErrAmbiguousDriver, name, sessionKey)
	}
}

// DriverSeries returns the laps of one driver in one session ordered by lap number.
func (s *Selector) DriverSeries(sessionKey, driverNumber int) Series {
	ret := lo.Filter(s.ds.Laps, func(item model.Lap, _ int) bool {
		return item.SessionKey == sessionKey && item.DriverNumber == driverNumber
	})
	slices.SortStableFunc(ret, func(a, b model.Lap) int { return a.LapNumber - b.LapNumber })
	return ret
}
