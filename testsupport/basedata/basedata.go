// Package basedata provides a small, hand made OpenF1 data set for tests.
//
// Two 2023 races (Sakhir, Jeddah) with raw lap tables that still contain
// the formation lap (lap 1, no duration).
package basedata

import (
	"time"

	"github.com/aarondl/opt/null"

	"github.com/Melanie472/f1laps/pkg/model"
)

const (
	SakhirKey = 7953
	JeddahKey = 7779

	Verstappen = 1
	Hamilton   = 44
	Alonso     = 14
)

type rawLap struct {
	lap      int
	duration *float64
}

func secs(f float64) *float64 { return &f }

// raw lap durations by session and driver. lap 1 is the formation lap.
var rawLaps = map[int]map[int][]rawLap{
	SakhirKey: {
		Verstappen: {{1, nil}, {2, secs(97.5)}, {3, secs(96.2)}, {4, secs(95.8)}, {5, secs(96.0)}},
		Hamilton:   {{1, nil}, {2, secs(98.1)}, {3, secs(97.0)}, {4, nil}, {5, secs(96.9)}},
		Alonso:     {{1, nil}, {2, secs(99.0)}, {3, secs(98.5)}},
	},
	JeddahKey: {
		Verstappen: {{1, nil}, {2, secs(91.2)}, {3, secs(90.1)}},
		Hamilton:   {{1, nil}, {2, secs(92.0)}, {3, secs(91.5)}},
	},
}

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2023-03-05T15:00:00Z")
	return t
}

// RawSessions returns the sessions as the API would deliver them.
func RawSessions() []map[string]any {
	return []map[string]any{
		{
			"session_key": SakhirKey, "meeting_key": 1141, "location": "Sakhir",
			"session_name": "Race", "session_type": "Race", "year": 2023,
			"country_name": "Bahrain", "circuit_short_name": "Sakhir",
			"date_start": "2023-03-05T15:00:00+00:00",
		},
		{
			"session_key": JeddahKey, "meeting_key": 1142, "location": "Jeddah",
			"session_name": "Race", "session_type": "Race", "year": 2023,
			"country_name": "Saudi Arabia", "circuit_short_name": "Jeddah",
			"date_start": "2023-03-19T17:00:00+00:00",
		},
	}
}

func RawDrivers() []map[string]any {
	ret := []map[string]any{}
	for _, sk := range []int{SakhirKey, JeddahKey} {
		ret = append(ret,
			rawDriver(sk, Verstappen, "M VERSTAPPEN", "Red Bull Racing"),
			rawDriver(sk, Hamilton, "L HAMILTON", "Mercedes"))
		if sk == SakhirKey {
			ret = append(ret, rawDriver(sk, Alonso, "F ALONSO", "Aston Martin"))
		}
	}
	return ret
}

func rawDriver(sessionKey, number int, name, team string) map[string]any {
	return map[string]any{
		"session_key":    sessionKey,
		"driver_number":  number,
		"broadcast_name": name,
		"team_name":      team,
	}
}

// RawLaps returns the laps of a session including a nested segment object
// so the payload needs flattening.
func RawLaps(sessionKey int) []map[string]any {
	ret := []map[string]any{}
	for _, driver := range []int{Verstappen, Hamilton, Alonso} {
		for _, l := range rawLaps[sessionKey][driver] {
			row := map[string]any{
				"session_key":    sessionKey,
				"driver_number":  driver,
				"lap_number":     l.lap,
				"lap_duration":   nil,
				"is_pit_out_lap": l.lap == 1,
				"segments": map[string]any{
					"sector_1": []any{2049, 2049},
				},
			}
			if l.duration != nil {
				row["lap_duration"] = *l.duration
			}
			ret = append(ret, row)
		}
	}
	return ret
}

func SampleSessions() []model.Session {
	return []model.Session{
		{
			SessionKey: SakhirKey, MeetingKey: 1141, Location: "Sakhir",
			SessionName: "Race", Year: 2023, CountryName: "Bahrain",
			CircuitShortName: "Sakhir", DateStart: TestTime(),
		},
		{
			SessionKey: JeddahKey, MeetingKey: 1142, Location: "Jeddah",
			SessionName: "Race", Year: 2023, CountryName: "Saudi Arabia",
			CircuitShortName: "Jeddah", DateStart: TestTime().Add(14 * 24 * time.Hour).Add(2 * time.Hour),
		},
	}
}

func SampleDrivers() []model.Driver {
	ret := []model.Driver{}
	for _, row := range RawDrivers() {
		ret = append(ret, model.Driver{
			SessionKey:    row["session_key"].(int),
			DriverNumber:  row["driver_number"].(int),
			BroadcastName: row["broadcast_name"].(string),
			TeamName:      row["team_name"].(string),
		})
	}
	return ret
}

// SampleRawLaps returns the laps of all sessions before normalization.
func SampleRawLaps() []model.Lap {
	ret := []model.Lap{}
	for _, sk := range []int{SakhirKey, JeddahKey} {
		for _, driver := range []int{Verstappen, Hamilton, Alonso} {
			for _, l := range rawLaps[sk][driver] {
				ret = append(ret, model.Lap{
					SessionKey:   sk,
					DriverNumber: driver,
					LapNumber:    l.lap,
					LapDuration:  null.FromPtr(l.duration),
					IsPitOutLap:  l.lap == 1,
				})
			}
		}
	}
	return ret
}

// SampleLaps returns the laps of all sessions after normalization.
func SampleLaps() []model.Lap {
	ret := []model.Lap{}
	for _, l := range SampleRawLaps() {
		if l.LapNumber == 1 {
			continue
		}
		l.LapNumber--
		ret = append(ret, l)
	}
	return ret
}
