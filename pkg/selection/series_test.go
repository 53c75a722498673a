package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Melanie472/f1laps/pkg/model"
)

func series(laps ...int) Series {
	ret := Series{}
	for _, l := range laps {
		ret = append(ret, model.Lap{SessionKey: 1, DriverNumber: 1, LapNumber: l})
	}
	return ret
}

func lapNumbers(s Series) []int {
	ret := []int{}
	for _, l := range s {
		ret = append(ret, l.LapNumber)
	}
	return ret
}

func TestSeries_Bounds(t *testing.T) {
	got, err := series(2, 3, 7).Bounds()
	require.NoError(t, err)
	assert.Equal(t, LapRange{From: 2, To: 7}, got)

	_, err = Series{}.Bounds()
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestSeries_InRange(t *testing.T) {
	s := series(1, 2, 3, 5, 6, 8)
	tests := []struct {
		name string
		r    LapRange
		want []int
	}{
		{"full", LapRange{1, 8}, []int{1, 2, 3, 5, 6, 8}},
		{"inclusive bounds", LapRange{2, 5}, []int{2, 3, 5}},
		{"single lap", LapRange{6, 6}, []int{6}},
		{"gap only", LapRange{4, 4}, []int{}},
		{"outside", LapRange{10, 20}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.InRange(tt.r)
			assert.Equal(t, tt.want, lapNumbers(got))
			for _, l := range s {
				inside := tt.r.From <= l.LapNumber && l.LapNumber <= tt.r.To
				assert.Equal(t, inside, tt.r.Contains(l.LapNumber))
			}
		})
	}
}

func TestClampRange(t *testing.T) {
	bounds := LapRange{From: 1, To: 57}
	tests := []struct {
		name string
		r    LapRange
		want LapRange
	}{
		{"inside", LapRange{10, 20}, LapRange{10, 20}},
		{"below", LapRange{-5, 20}, LapRange{1, 20}},
		{"above", LapRange{30, 99}, LapRange{30, 57}},
		{"completely outside", LapRange{70, 80}, LapRange{57, 57}},
		{"inverted", LapRange{20, 10}, LapRange{10, 20}},
		{"zero value", LapRange{}, LapRange{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampRange(tt.r, bounds))
		})
	}
}
