package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Melanie472/f1laps/pkg/selection"
)

func TestSelectOne(t *testing.T) {
	options := []string{"M VERSTAPPEN", "L HAMILTON"}
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{name: "no value", values: url.Values{}, want: "M VERSTAPPEN"},
		{name: "listed value", values: url.Values{"driver": {"L HAMILTON"}}, want: "L HAMILTON"},
		{name: "unlisted value", values: url.Values{"driver": {"F ALONSO"}}, want: "M VERSTAPPEN"},
		{name: "empty value", values: url.Values{"driver": {""}}, want: "M VERSTAPPEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newQuerySurface(tt.values)
			assert.Equal(t, tt.want, s.SelectOne("driver", "Driver", options))
			assert.Len(t, s.blocks[0].Options, len(options))
		})
	}
}

func TestSelectRange(t *testing.T) {
	bounds := selection.LapRange{From: 1, To: 10}
	s := newQuerySurface(url.Values{
		"laps.from":  {"3"},
		"laps.to":    {"5"},
		"other.from": {"7"},
	})
	assert.Equal(t, selection.LapRange{From: 3, To: 5}, s.SelectRange("laps", "Laps", bounds))
	assert.Equal(t, selection.LapRange{From: 7, To: 10}, s.SelectRange("other", "Other", bounds))
	assert.Equal(t, "other.from", s.blocks[1].FromKey)
	assert.Equal(t, "other.to", s.blocks[1].ToKey)
}
