// Package console renders the dashboard for the terminal. Widget values
// are preset (usually from command line flags) instead of being asked for.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/selection"
)

type (
	Option  func(*Surface)
	Surface struct {
		w        io.Writer
		selects  map[string]string
		ranges   map[string]selection.LapRange
		checks   map[string]bool
		quiet    bool
		spec     *chart.Spec
		warnings []string
	}
)

// WithSelect presets the value of a select widget.
// Empty values are ignored so unset flags keep the default.
func WithSelect(key, value string) Option {
	return func(s *Surface) {
		if value != "" {
			s.selects[key] = value
		}
	}
}

// WithRange presets the lap range. A zero bound is replaced by the
// corresponding series bound.
func WithRange(key string, from, to int) Option {
	return func(s *Surface) {
		s.ranges[key] = selection.LapRange{From: from, To: to}
	}
}

func WithCheck(key string, value bool) Option {
	return func(s *Surface) {
		s.checks[key] = value
	}
}

// WithQuiet suppresses the widget echo lines.
func WithQuiet(arg bool) Option {
	return func(s *Surface) {
		s.quiet = arg
	}
}

func NewSurface(w io.Writer, opts ...Option) *Surface {
	s := &Surface{
		w:       w,
		selects: map[string]string{},
		ranges:  map[string]selection.LapRange{},
		checks:  map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Heading(text string) {
	fmt.Fprintf(s.w, "%s\n%s\n\n", text, strings.Repeat("=", len(text)))
}

func (s *Surface) Text(text string) {
	fmt.Fprintf(s.w, "%s\n\n", text)
}

func (s *Surface) Warning(text string) {
	s.warnings = append(s.warnings, text)
	fmt.Fprintf(s.w, "WARNING: %s\n\n", text)
}

func (s *Surface) SelectOne(key, label string, options []string) string {
	selected := ""
	if len(options) > 0 {
		selected = options[0]
	}
	if v, ok := s.selects[key]; ok {
		selected = v
	}
	s.echo(label, selected)
	return selected
}

func (s *Surface) SelectRange(key, label string, bounds selection.LapRange) selection.LapRange {
	r := bounds
	if v, ok := s.ranges[key]; ok {
		if v.From != 0 {
			r.From = v.From
		}
		if v.To != 0 {
			r.To = v.To
		}
	}
	s.echo(label, fmt.Sprintf("%d-%d (available %d-%d)", r.From, r.To, bounds.From, bounds.To))
	return r
}

func (s *Surface) Checkbox(key, label string) bool {
	v := s.checks[key]
	s.echo(label, fmt.Sprintf("%t", v))
	return v
}

func (s *Surface) Chart(spec *chart.Spec) {
	s.spec = spec
}

// ChartSpec returns the chart of the last pass, nil if there was nothing to chart.
func (s *Surface) ChartSpec() *chart.Spec {
	return s.spec
}

func (s *Surface) Warnings() []string {
	return s.warnings
}

func (s *Surface) echo(label, value string) {
	if s.quiet {
		return
	}
	fmt.Fprintf(s.w, "%s %s\n", label, value)
}
