package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Melanie472/f1laps/pkg/dashboard"
	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/testsupport/basedata"
)

type staticData struct {
	ds *dataset.Dataset
}

func (s staticData) Dataset(context.Context) (*dataset.Dataset, error) {
	return s.ds, nil
}

func sampleDashboard(t *testing.T) *dashboard.Dashboard {
	t.Helper()
	ds := &dataset.Dataset{
		Sessions: basedata.SampleSessions(),
		Drivers:  basedata.SampleDrivers(),
		Laps:     basedata.SampleRawLaps(),
	}
	require.NoError(t, ds.Normalize())
	return dashboard.New(staticData{ds: ds})
}

func TestSurface(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf,
		WithSelect(dashboard.KeyLocation, "Sakhir"),
		WithSelect(dashboard.KeyDriver, "L HAMILTON"),
		WithSelect(dashboard.KeyCompareDriver, ""),
		WithRange(dashboard.KeyLaps, 2, 0),
		WithCheck(dashboard.KeyCompare, true),
	)
	state, err := sampleDashboard(t).Render(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, basedata.Hamilton, state.Driver.DriverNumber)
	// the empty compare driver falls back to the first driver of the session
	assert.Equal(t, basedata.Verstappen, state.CompareDriver.DriverNumber)
	assert.Equal(t, 2, state.LapRange.From)
	assert.Equal(t, 4, state.LapRange.To)
	require.NotNil(t, s.ChartSpec())
	assert.Len(t, s.ChartSpec().Series, 2)
	assert.Empty(t, s.Warnings())

	out := buf.String()
	assert.Contains(t, out, "Which driver do you want to look at? L HAMILTON")
	assert.Contains(t, out, "2-4 (available 1-4)")
	assert.Contains(t, out, "Driver: L HAMILTON | Location: Sakhir | Fastest lap: 4 (96.900 s)")
}

func TestSurfaceWarning(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, WithQuiet(true), WithSelect(dashboard.KeyLocation, "Monza"))
	state, err := sampleDashboard(t).Render(context.Background(), s)
	require.NoError(t, err)
	assert.Error(t, state.NoData)
	assert.Nil(t, s.ChartSpec())
	assert.Len(t, s.Warnings(), 1)
	assert.True(t, strings.HasPrefix(buf.String(), "WARNING: location not found"))
}

func TestWriteLaps(t *testing.T) {
	laps := basedata.SampleLaps()[:4]
	names := map[int]string{basedata.Verstappen: "M VERSTAPPEN"}
	tests := []struct {
		format   Format
		contains []string
	}{
		{FormatTable, []string{"│ M VERSTAPPEN │", "1:35.800", "LAP TIME"}},
		{FormatCSV, []string{"Driver,Lap,Lap time,Seconds,Pit out", "M VERSTAPPEN,3,1:35.800,95.8,false"}},
		{FormatMarkdown, []string{"| Driver | Lap |", "| M VERSTAPPEN | 3 | 1:35.800 |"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteLaps(&buf, laps, names, tt.format))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriteLapsYAML(t *testing.T) {
	laps := []model.Lap{basedata.SampleLaps()[0], {SessionKey: 1, DriverNumber: 99, LapNumber: 7}}
	var buf bytes.Buffer
	require.NoError(t, WriteLaps(&buf, laps, map[int]string{basedata.Verstappen: "M VERSTAPPEN"}, FormatYAML))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "M VERSTAPPEN", got[0]["driver"])
	assert.Equal(t, 1, got[0]["lap_number"])
	assert.Equal(t, 97.5, got[0]["lap_duration"])
	assert.Equal(t, "#99", got[1]["driver"])
	assert.Nil(t, got[1]["lap_duration"])
	assert.Equal(t, "-", got[1]["lap_time"])
}

func TestWriteSessionsAndDrivers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSessions(&buf, basedata.SampleSessions(), FormatCSV))
	assert.Contains(t, buf.String(), "7953,Sakhir,Bahrain,Sakhir,2023-03-05 15:00")

	buf.Reset()
	require.NoError(t, WriteDrivers(&buf, basedata.SampleDrivers(), FormatMarkdown))
	assert.Contains(t, buf.String(), "| 7779 | 44 | L HAMILTON | Mercedes |")
}

func TestFormatLapTime(t *testing.T) {
	assert.Equal(t, "1:35.800", FormatLapTime(95.8))
	assert.Equal(t, "0:59.999", FormatLapTime(59.999))
	assert.Equal(t, "2:00.000", FormatLapTime(119.9999))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
