//nolint:funlen // ok for tests
package dataset

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/pkg/openf1"
	"github.com/Melanie472/f1laps/testsupport/basedata"
	"github.com/Melanie472/f1laps/testsupport/openf1mock"
)

var race2023 = Query{Year: 2023, SessionName: model.SessionNameRace}

func lap(session, driver, num int, dur ...float64) model.Lap {
	l := model.Lap{SessionKey: session, DriverNumber: driver, LapNumber: num}
	if len(dur) > 0 {
		l.LapDuration = null.From(dur[0])
	}
	return l
}

func TestNormalizeLaps(t *testing.T) {
	tests := []struct {
		name    string
		laps    []model.Lap
		want    []model.Lap
		wantErr error
	}{
		{
			name: "empty",
			laps: []model.Lap{},
			want: []model.Lap{},
		},
		{
			name: "drops warm-up lap and renumbers",
			laps: []model.Lap{lap(1, 1, 1), lap(1, 1, 2, 90.2), lap(1, 1, 3, 88.1)},
			want: []model.Lap{lap(1, 1, 1, 90.2), lap(1, 1, 2, 88.1)},
		},
		{
			name: "every series is handled",
			laps: []model.Lap{
				lap(1, 1, 1), lap(1, 44, 1), lap(1, 1, 2, 90.0),
				lap(2, 1, 1), lap(1, 44, 2, 91.0), lap(2, 1, 2, 80.0),
			},
			want: []model.Lap{lap(1, 1, 1, 90.0), lap(1, 44, 1, 91.0), lap(2, 1, 1, 80.0)},
		},
		{
			name: "series without warm-up lap is shifted too",
			laps: []model.Lap{lap(1, 1, 3, 90.0), lap(1, 1, 4, 91.0)},
			want: []model.Lap{lap(1, 1, 2, 90.0), lap(1, 1, 3, 91.0)},
		},
		{
			name:    "duplicate warm-up lap",
			laps:    []model.Lap{lap(1, 1, 1), lap(1, 1, 1, 99.0)},
			wantErr: ErrDuplicateWarmupLap,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeLaps(tt.laps)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLaps_doesNotModifyInput(t *testing.T) {
	in := []model.Lap{lap(1, 1, 1), lap(1, 1, 2, 90.2)}
	_, err := NormalizeLaps(in)
	require.NoError(t, err)
	assert.Equal(t, 2, in[1].LapNumber)
}

func TestNormalize_sampleData(t *testing.T) {
	ds := &Dataset{Laps: basedata.SampleRawLaps()}
	require.NoError(t, ds.Normalize())
	assert.Equal(t, basedata.SampleLaps(), ds.Laps)

	groups := lo.GroupBy(ds.Laps, func(l model.Lap) model.SeriesKey { return l.SeriesKey() })
	for k, laps := range groups {
		minLap := lo.MinBy(laps, func(a, b model.Lap) bool { return a.LapNumber < b.LapNumber })
		assert.Equal(t, 1, minLap.LapNumber, "series %v", k)
		// only the warm-up laps are flagged as pit out laps in the sample data
		for _, l := range laps {
			assert.False(t, l.IsPitOutLap, "warm-up lap survived in %v", k)
		}
	}
}

func TestNormalize_idempotent(t *testing.T) {
	ds := &Dataset{Laps: basedata.SampleRawLaps()}
	require.NoError(t, ds.Normalize())
	require.True(t, ds.Normalized())
	require.NoError(t, ds.Normalize())
	assert.Equal(t, basedata.SampleLaps(), ds.Laps)
}

func TestValidate(t *testing.T) {
	ds := &Dataset{
		Drivers: basedata.SampleDrivers(),
		Laps:    basedata.SampleLaps(),
	}
	assert.NoError(t, ds.Validate())

	ds.Laps = append(ds.Laps, lap(basedata.JeddahKey, basedata.Alonso, 1, 93.0),
		lap(basedata.JeddahKey, basedata.Alonso, 2, 92.0))
	err := ds.Validate()
	assert.ErrorIs(t, err, ErrOrphanLap)
	assert.Contains(t, err.Error(), "driver 14")
}

func TestFetch(t *testing.T) {
	srv := openf1mock.New(t)
	src := openf1.New(openf1.WithBaseURL(srv.BaseURL()))

	ds, err := Fetch(context.Background(), src, race2023)
	require.NoError(t, err)
	assert.False(t, ds.Normalized())
	assert.Len(t, ds.Sessions, 2)
	assert.Equal(t, basedata.SampleDrivers(), ds.Drivers)
	assert.ElementsMatch(t, basedata.SampleRawLaps(), ds.Laps)
	assert.Equal(t, 2, srv.Hits("laps"))
}

func TestFetch_dropsDriversOfOtherSessions(t *testing.T) {
	drivers := append(basedata.RawDrivers(), map[string]any{
		"session_key": 1, "driver_number": 4, "broadcast_name": "L NORRIS",
	})
	srv := openf1mock.New(t, openf1mock.WithDrivers(drivers))
	src := openf1.New(openf1.WithBaseURL(srv.BaseURL()))

	ds, err := Fetch(context.Background(), src, race2023)
	require.NoError(t, err)
	assert.Equal(t, basedata.SampleDrivers(), ds.Drivers)
}

func TestFetch_failures(t *testing.T) {
	for _, endpoint := range []string{"sessions", "drivers", "laps"} {
		t.Run(endpoint, func(t *testing.T) {
			srv := openf1mock.New(t, openf1mock.WithFailure(endpoint, http.StatusBadGateway))
			src := openf1.New(openf1.WithBaseURL(srv.BaseURL()))

			_, err := Load(context.Background(), src, race2023)
			var se *openf1.StatusError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, http.StatusBadGateway, se.StatusCode)
		})
	}
}

func TestLoader_fetchesOnce(t *testing.T) {
	srv := openf1mock.New(t)
	src := openf1.New(openf1.WithBaseURL(srv.BaseURL()))
	l := NewLoader(src, WithQuery(race2023))

	first, err := l.Dataset(context.Background())
	require.NoError(t, err)
	second, err := l.Dataset(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, first.Normalized())
	assert.Equal(t, basedata.SampleLaps(), first.Laps)
	assert.Equal(t, 1, srv.Hits("sessions"))
	assert.Equal(t, 1, srv.Hits("drivers"))
	assert.Equal(t, 2, srv.Hits("laps"))
}

func TestLoader_failureIsNotCached(t *testing.T) {
	srv := openf1mock.New(t, openf1mock.WithFailure("drivers", http.StatusServiceUnavailable))
	src := openf1.New(openf1.WithBaseURL(srv.BaseURL()))
	l := NewLoader(src, WithQuery(race2023))

	_, err := l.Dataset(context.Background())
	require.Error(t, err)
	_, err = l.Dataset(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, srv.Hits("sessions"))
}
