package openf1

import (
	"fmt"
	"time"

	"github.com/Melanie472/f1laps/pkg/flatten"
	"github.com/Melanie472/f1laps/pkg/model"
)

func decodeAll[T any](rows []flatten.Row, decode func(flatten.Row) (T, error)) ([]T, error) {
	ret := make([]T, 0, len(rows))
	for i, row := range rows {
		item, err := decode(row)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidPayload, i, err)
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func SessionFromRow(row flatten.Row) (model.Session, error) {
	var (
		s   model.Session
		err error
	)
	if s.SessionKey, err = row.Int("session_key"); err != nil {
		return s, err
	}
	if s.Location, err = row.String("location"); err != nil {
		return s, err
	}
	if s.Year, err = row.Int("year"); err != nil {
		return s, err
	}
	s.MeetingKey, _ = row.Int("meeting_key")
	s.SessionName = row.StringOr("session_name", "")
	s.CountryName = row.StringOr("country_name", "")
	s.CircuitShortName = row.StringOr("circuit_short_name", "")
	if ds := row.StringOr("date_start", ""); ds != "" {
		if t, parseErr := time.Parse(time.RFC3339, ds); parseErr == nil {
			s.DateStart = t.UTC()
		}
	}
	return s, nil
}

func DriverFromRow(row flatten.Row) (model.Driver, error) {
	var (
		d   model.Driver
		err error
	)
	if d.SessionKey, err = row.Int("session_key"); err != nil {
		return d, err
	}
	if d.DriverNumber, err = row.Int("driver_number"); err != nil {
		return d, err
	}
	d.BroadcastName = row.StringOr("broadcast_name", "")
	d.FullName = row.StringOr("full_name", "")
	d.NameAcronym = row.StringOr("name_acronym", "")
	d.TeamName = row.StringOr("team_name", "")
	d.TeamColour = row.StringOr("team_colour", "")
	return d, nil
}

func LapFromRow(row flatten.Row) (model.Lap, error) {
	var (
		l   model.Lap
		err error
	)
	if l.SessionKey, err = row.Int("session_key"); err != nil {
		return l, err
	}
	if l.DriverNumber, err = row.Int("driver_number"); err != nil {
		return l, err
	}
	if l.LapNumber, err = row.Int("lap_number"); err != nil {
		return l, err
	}
	if l.LapDuration, err = row.Float("lap_duration"); err != nil {
		return l, err
	}
	l.IsPitOutLap = row.BoolOr("is_pit_out_lap", false)
	return l, nil
}
