package model

import "github.com/aarondl/opt/null"

// Lap is one completed lap of a driver in a session.
// LapDuration is null when the timing feed did not record it.
type Lap struct {
	SessionKey   int               `json:"sessionKey"`
	DriverNumber int               `json:"driverNumber"`
	LapNumber    int               `json:"lapNumber"`
	LapDuration  null.Val[float64] `json:"lapDuration"`
	IsPitOutLap  bool              `json:"isPitOutLap,omitempty"`
}

// SeriesKey identifies the laps of one driver in one session.
type SeriesKey struct {
	SessionKey   int
	DriverNumber int
}

func (l Lap) SeriesKey() SeriesKey {
	return SeriesKey{SessionKey: l.SessionKey, DriverNumber: l.DriverNumber}
}

func (d Driver) SeriesKey() SeriesKey {
	return SeriesKey{SessionKey: d.SessionKey, DriverNumber: d.DriverNumber}
}
