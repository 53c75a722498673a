//nolint:funlen // ok for tests
package openf1

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	testifyassert "github.com/stretchr/testify/assert"
	"gotest.tools/v3/assert"

	"github.com/Melanie472/f1laps/pkg/model"
	"github.com/Melanie472/f1laps/testsupport/basedata"
	"github.com/Melanie472/f1laps/testsupport/openf1mock"
)

func TestClient_Sessions(t *testing.T) {
	srv := openf1mock.New(t)
	c := New(WithBaseURL(srv.BaseURL()))

	got, err := c.Sessions(context.Background(),
		SessionQuery{SessionName: model.SessionNameRace, Year: 2023})
	assert.NilError(t, err)
	assert.DeepEqual(t, got, basedata.SampleSessions())

	got, err = c.Sessions(context.Background(),
		SessionQuery{SessionName: model.SessionNameRace, Year: 2022})
	assert.NilError(t, err)
	assert.Equal(t, len(got), 0)
}

func TestClient_Drivers(t *testing.T) {
	srv := openf1mock.New(t)
	c := New(WithBaseURL(srv.BaseURL() + "/"))

	got, err := c.Drivers(context.Background())
	assert.NilError(t, err)
	assert.DeepEqual(t, got, basedata.SampleDrivers())
}

func TestClient_Laps(t *testing.T) {
	srv := openf1mock.New(t)
	c := New(WithBaseURL(srv.BaseURL()))

	got, err := c.Laps(context.Background(), basedata.JeddahKey)
	assert.NilError(t, err)
	want := []model.Lap{}
	for _, l := range basedata.SampleRawLaps() {
		if l.SessionKey == basedata.JeddahKey {
			want = append(want, l)
		}
	}
	testifyassert.Equal(t, want, got)
	assert.Equal(t, srv.Hits("laps"), 1)
}

func TestClient_errors(t *testing.T) {
	tests := []struct {
		name      string
		opts      []openf1mock.Option
		call      func(c *Client) error
		wantState int
		wantErr   error
	}{
		{
			name: "sessions not found",
			opts: []openf1mock.Option{openf1mock.WithFailure("sessions", http.StatusNotFound)},
			call: func(c *Client) error {
				_, err := c.Sessions(context.Background(), SessionQuery{})
				return err
			},
			wantState: http.StatusNotFound,
		},
		{
			name: "drivers server error",
			opts: []openf1mock.Option{openf1mock.WithFailure("drivers", http.StatusInternalServerError)},
			call: func(c *Client) error {
				_, err := c.Drivers(context.Background())
				return err
			},
			wantState: http.StatusInternalServerError,
		},
		{
			name: "lap without lap number",
			opts: []openf1mock.Option{openf1mock.WithLaps(func(int) []map[string]any {
				return []map[string]any{{"session_key": 1, "driver_number": 1}}
			})},
			call: func(c *Client) error {
				_, err := c.Laps(context.Background(), 1)
				return err
			},
			wantErr: ErrInvalidPayload,
		},
		{
			name: "empty sessions table",
			opts: []openf1mock.Option{openf1mock.WithSessions(nil)},
			call: func(c *Client) error {
				_, err := c.Sessions(context.Background(), SessionQuery{})
				return err
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := openf1mock.New(t, tt.opts...)
			err := tt.call(New(WithBaseURL(srv.BaseURL())))
			if tt.wantState == 0 && tt.wantErr == nil {
				assert.NilError(t, err)
				return
			}
			assert.Assert(t, err != nil)
			if tt.wantErr != nil {
				assert.Assert(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantState != 0 {
				var se *StatusError
				assert.Assert(t, errors.As(err, &se), "got %v", err)
				assert.Equal(t, se.StatusCode, tt.wantState)
				assert.Equal(t, se.Detail, "mock failure")
			}
		})
	}
}

func TestClient_unreachable(t *testing.T) {
	c := New(WithBaseURL("http://127.0.0.1:1"))
	_, err := c.Drivers(context.Background())
	assert.Assert(t, err != nil)
}

func TestLapFromRow_nullDuration(t *testing.T) {
	l, err := LapFromRow(map[string]any{
		"session_key": int64(1), "driver_number": int64(4), "lap_number": int64(2),
		"lap_duration": nil,
	})
	assert.NilError(t, err)
	testifyassert.Equal(t, model.Lap{
		SessionKey: 1, DriverNumber: 4, LapNumber: 2, LapDuration: null.Val[float64]{},
	}, l)
}

func TestClient_timeout(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	tests := []struct {
		name string
		opts []Option
		want time.Duration
	}{
		{name: "default", want: defaultTimeout},
		{name: "timeout only", opts: []Option{WithTimeout(5 * time.Second)}, want: 5 * time.Second},
		{
			name: "timeout before client",
			opts: []Option{WithTimeout(5 * time.Second), WithHTTPClient(shared)},
			want: 5 * time.Second,
		},
		{
			name: "timeout after client",
			opts: []Option{WithHTTPClient(shared), WithTimeout(5 * time.Second)},
			want: 5 * time.Second,
		},
		{name: "client only", opts: []Option{WithHTTPClient(shared)}, want: time.Minute},
		{name: "nil client", opts: []Option{WithHTTPClient(nil), WithTimeout(time.Second)}, want: time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.opts...)
			assert.Equal(t, c.httpClient.Timeout, tt.want)
			assert.Assert(t, c.httpClient != shared)
		})
	}
	assert.Equal(t, shared.Timeout, time.Minute)
}

func TestClient_timeoutKeepsDefaultClient(t *testing.T) {
	before := http.DefaultClient.Timeout
	c := New(WithHTTPClient(http.DefaultClient), WithTimeout(time.Second))
	assert.Equal(t, c.httpClient.Timeout, time.Second)
	assert.Equal(t, http.DefaultClient.Timeout, before)
}
