package web

import (
	"html/template"
	"net/url"
	"slices"
	"strconv"

	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/selection"
)

type blockKind string

const (
	kindHeading  blockKind = "heading"
	kindText     blockKind = "text"
	kindWarning  blockKind = "warning"
	kindSelect   blockKind = "select"
	kindRange    blockKind = "range"
	kindCheckbox blockKind = "checkbox"
	kindChart    blockKind = "chart"
)

// rangeParams returns the query parameters of the range widget key.
func rangeParams(key string) (from, to string) {
	return key + ".from", key + ".to"
}

type (
	option struct {
		Value    string
		Selected bool
	}
	// block is one element of the page in render order
	block struct {
		Kind    blockKind
		Key     string
		Label   string
		Text    string
		Options []option
		FromKey string
		ToKey   string
		Bounds  selection.LapRange
		Value   selection.LapRange
		Checked bool
		Spec    *chart.Spec
		SVG     template.HTML
	}
	// querySurface takes the widget values from the request query.
	// Missing or unusable values fall back to the widget defaults.
	querySurface struct {
		values url.Values
		blocks []*block
	}
)

func newQuerySurface(values url.Values) *querySurface {
	return &querySurface{values: values}
}

func (s *querySurface) add(b *block) {
	s.blocks = append(s.blocks, b)
}

func (s *querySurface) Heading(text string) {
	s.add(&block{Kind: kindHeading, Text: text})
}

func (s *querySurface) Text(text string) {
	s.add(&block{Kind: kindText, Text: text})
}

func (s *querySurface) Warning(text string) {
	s.add(&block{Kind: kindWarning, Text: text})
}

func (s *querySurface) SelectOne(key, label string, options []string) string {
	selected := ""
	if len(options) > 0 {
		selected = options[0]
	}
	// values of a previous pass may not be listed anymore, e.g. the driver
	// after switching the location
	if v := s.values.Get(key); slices.Contains(options, v) {
		selected = v
	}
	b := &block{Kind: kindSelect, Key: key, Label: label}
	for _, o := range options {
		b.Options = append(b.Options, option{Value: o, Selected: o == selected})
	}
	s.add(b)
	return selected
}

func (s *querySurface) SelectRange(key, label string, bounds selection.LapRange) selection.LapRange {
	fromParam, toParam := rangeParams(key)
	value := selection.LapRange{
		From: s.intValue(fromParam, bounds.From),
		To:   s.intValue(toParam, bounds.To),
	}
	s.add(&block{
		Kind:    kindRange,
		Key:     key,
		FromKey: fromParam,
		ToKey:   toParam,
		Label:   label,
		Bounds:  bounds,
		Value:   selection.ClampRange(value, bounds),
	})
	return value
}

func (s *querySurface) Checkbox(key, label string) bool {
	checked := false
	if v := s.values.Get(key); v != "" {
		if v == "on" {
			checked = true
		} else if b, err := strconv.ParseBool(v); err == nil {
			checked = b
		}
	}
	s.add(&block{Kind: kindCheckbox, Key: key, Label: label, Checked: checked})
	return checked
}

func (s *querySurface) Chart(spec *chart.Spec) {
	s.add(&block{Kind: kindChart, Spec: spec})
}

// chartSpec returns the last chart of the pass, nil if none was produced.
func (s *querySurface) chartSpec() *chart.Spec {
	for i := len(s.blocks) - 1; i >= 0; i-- {
		if s.blocks[i].Kind == kindChart {
			return s.blocks[i].Spec
		}
	}
	return nil
}

func (s *querySurface) warnings() []string {
	var ret []string
	for _, b := range s.blocks {
		if b.Kind == kindWarning {
			ret = append(ret, b.Text)
		}
	}
	return ret
}

func (s *querySurface) intValue(key string, defaultVal int) int {
	v, err := strconv.Atoi(s.values.Get(key))
	if err != nil {
		return defaultVal
	}
	return v
}
