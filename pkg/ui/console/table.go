package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/Melanie472/f1laps/pkg/model"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatCSV, FormatMarkdown, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type column struct {
	title string
	key   string // used for yaml output
}

type tableData struct {
	columns []column
	rows    [][]any
}

func (td *tableData) write(w io.Writer, f Format) error {
	if f == FormatYAML {
		return td.writeYAML(w)
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	header := make(table.Row, 0, len(td.columns))
	for _, c := range td.columns {
		header = append(header, c.title)
	}
	t.AppendHeader(header)
	for _, r := range td.rows {
		row := make(table.Row, 0, len(r))
		for _, v := range r {
			if v == nil {
				v = ""
			}
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	switch f {
	case FormatCSV:
		t.RenderCSV()
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatTable:
		t.Render()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return nil
}

func (td *tableData) writeYAML(w io.Writer) error {
	docs := make([]yaml.Node, 0, len(td.rows))
	for _, r := range td.rows {
		node := yaml.Node{Kind: yaml.MappingNode}
		for i, c := range td.columns {
			var value yaml.Node
			if err := value.Encode(r[i]); err != nil {
				return err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: c.key}, &value)
		}
		docs = append(docs, node)
	}
	seq := yaml.Node{Kind: yaml.SequenceNode}
	for i := range docs {
		seq.Content = append(seq.Content, &docs[i])
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&seq); err != nil {
		return err
	}
	return enc.Close()
}

func WriteSessions(w io.Writer, sessions []model.Session, f Format) error {
	td := &tableData{columns: []column{
		{"Session", "session_key"},
		{"Location", "location"},
		{"Country", "country_name"},
		{"Circuit", "circuit_short_name"},
		{"Start", "date_start"},
	}}
	for _, s := range sessions {
		td.rows = append(td.rows, []any{
			s.SessionKey, s.Location, s.CountryName, s.CircuitShortName,
			s.DateStart.Format("2006-01-02 15:04"),
		})
	}
	return td.write(w, f)
}

func WriteDrivers(w io.Writer, drivers []model.Driver, f Format) error {
	td := &tableData{columns: []column{
		{"Session", "session_key"},
		{"No", "driver_number"},
		{"Driver", "broadcast_name"},
		{"Team", "team_name"},
	}}
	for _, d := range drivers {
		td.rows = append(td.rows, []any{d.SessionKey, d.DriverNumber, d.BroadcastName, d.TeamName})
	}
	return td.write(w, f)
}

// WriteLaps prints the laps with the display name of the driver taken from names.
func WriteLaps(w io.Writer, laps []model.Lap, names map[int]string, f Format) error {
	td := &tableData{columns: []column{
		{"Driver", "driver"},
		{"Lap", "lap_number"},
		{"Lap time", "lap_time"},
		{"Seconds", "lap_duration"},
		{"Pit out", "is_pit_out_lap"},
	}}
	for _, l := range laps {
		var secs any
		lapTime := "-"
		if d, ok := l.LapDuration.Get(); ok {
			secs = d
			lapTime = FormatLapTime(d)
		}
		name, ok := names[l.DriverNumber]
		if !ok {
			name = fmt.Sprintf("#%d", l.DriverNumber)
		}
		td.rows = append(td.rows, []any{name, l.LapNumber, lapTime, secs, l.IsPitOutLap})
	}
	return td.write(w, f)
}

// FormatLapTime formats seconds as m:ss.mmm
func FormatLapTime(secs float64) string {
	ms := int64(secs*1000 + 0.5)
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
