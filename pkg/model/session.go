package model

import "time"

const SessionNameRace = "Race"

// Session is a single timed event, e.g. the 2023 race at Monza.
type Session struct {
	SessionKey       int       `json:"sessionKey"`
	MeetingKey       int       `json:"meetingKey,omitempty"`
	Location         string    `json:"location"`
	SessionName      string    `json:"sessionName"`
	Year             int       `json:"year"`
	CountryName      string    `json:"countryName,omitempty"`
	CircuitShortName string    `json:"circuitShortName,omitempty"`
	DateStart        time.Time `json:"dateStart,omitempty"`
}
