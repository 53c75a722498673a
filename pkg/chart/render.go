package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	ErrNothingToRender = errors.New("chart has no data points")
	ErrUnknownFormat   = errors.New("unknown chart format")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

type RenderOption func(*gochart.Chart)

func WithSize(width, height int) RenderOption {
	return func(c *gochart.Chart) {
		c.Width = width
		c.Height = height
	}
}

// Render draws spec to w. Series without points are left out.
func Render(w io.Writer, spec *Spec, format Format, opts ...RenderOption) error {
	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	graph, err := toGoChart(spec)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(graph)
	}
	return graph.Render(provider, w)
}

func toGoChart(spec *Spec) (*gochart.Chart, error) {
	series := []gochart.Series{}
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		cs := gochart.ContinuousSeries{
			Name: s.Name,
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(s.Color, "#")),
				StrokeWidth: 2,
			},
		}
		for _, p := range s.Points {
			cs.XValues = append(cs.XValues, p.X)
			cs.YValues = append(cs.YValues, p.Y)
			xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
			yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
		}
		series = append(series, cs)
	}
	if len(series) == 0 {
		return nil, ErrNothingToRender
	}

	graph := &gochart.Chart{
		Title:  spec.Title,
		Width:  1024,
		Height: 480,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  gochart.XAxis{Name: spec.XAxisTitle},
		YAxis:  gochart.YAxis{Name: spec.YAxisTitle},
		Series: series,
	}
	// go-chart refuses zero width ranges, e.g. a single lap
	if xMin == xMax {
		graph.XAxis.Range = &gochart.ContinuousRange{Min: xMin - 1, Max: xMax + 1}
	}
	switch {
	case spec.YRange != nil:
		graph.YAxis.Range = &gochart.ContinuousRange{Min: spec.YRange.Min, Max: spec.YRange.Max}
	case yMin == yMax:
		graph.YAxis.Range = &gochart.ContinuousRange{Min: yMin - 1, Max: yMax + 1}
	}
	if len(series) > 1 {
		graph.Elements = []gochart.Renderable{gochart.Legend(graph)}
	}
	return graph, nil
}
