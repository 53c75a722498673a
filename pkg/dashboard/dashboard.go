// Package dashboard runs the interactive lap time page against a Surface.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/analysis"
	"github.com/Melanie472/f1laps/pkg/chart"
	"github.com/Melanie472/f1laps/pkg/dataset"
	"github.com/Melanie472/f1laps/pkg/selection"
)

const instrumentName = "github.com/Melanie472/f1laps/pkg/dashboard"

// DataProvider delivers the loaded dataset. *dataset.Loader implements it.
type DataProvider interface {
	Dataset(ctx context.Context) (*dataset.Dataset, error)
}

type (
	Option    func(*Dashboard)
	Dashboard struct {
		data   DataProvider
		texts  bool
		l      *log.Logger
		tracer trace.Tracer
	}
)

// WithTexts enables the explanatory text blocks around the widgets.
func WithTexts(arg bool) Option {
	return func(d *Dashboard) {
		d.texts = arg
	}
}

func WithLogger(arg *log.Logger) Option {
	return func(d *Dashboard) {
		d.l = arg
	}
}

func New(data DataProvider, opts ...Option) *Dashboard {
	d := &Dashboard{
		data:   data,
		l:      log.Default().Named("dashboard"),
		tracer: otel.Tracer(instrumentName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Render runs one pass over the widgets of s.
// Conditions like an empty selection are reported via s.Warning and
// recorded in State.NoData. Only loading errors are returned.
func (d *Dashboard) Render(ctx context.Context, s Surface) (*State, error) {
	renderID := uuid.New().String()
	ctx, span := d.tracer.Start(ctx, "dashboard.render",
		trace.WithAttributes(attribute.String("render.id", renderID)))
	defer span.End()
	logger := d.l.With(log.String("renderId", renderID))

	if d.texts {
		s.Heading(textTitle)
		s.Text(textIntro)
		s.Text(textDataset)
	}
	ds, err := d.data.Dataset(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("could not load dataset", log.ErrorField(err))
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	state, err := d.pass(ds, s)
	if err != nil {
		if !isRecoverable(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		logger.Debug("nothing to chart", log.ErrorField(err))
		s.Warning(warningText(err))
		state.NoData = err
		return state, nil
	}
	if d.texts {
		s.Text(textPeaks)
		s.Text(textInsights)
	}
	span.SetAttributes(
		attribute.String("location", state.Location),
		attribute.Int("driver", state.Driver.DriverNumber),
		attribute.Bool("zoom", state.Zoom),
		attribute.Bool("compare", state.Compare))
	logger.Debug("rendered",
		log.String("location", state.Location),
		log.String("driver", state.Driver.BroadcastName),
		log.Int("from", state.LapRange.From),
		log.Int("to", state.LapRange.To),
		log.Bool("zoom", state.Zoom),
		log.Bool("compare", state.Compare))
	return state, nil
}

//nolint:funlen // widget order is sequential
func (d *Dashboard) pass(ds *dataset.Dataset, s Surface) (*State, error) {
	state := &State{}
	sel := selection.New(ds)

	locations := sel.Locations()
	if len(locations) == 0 {
		return state, fmt.Errorf("%s: %w", warnNoSessions, selection.ErrLocationNotFound)
	}
	state.Location = s.SelectOne(KeyLocation, labelLocation, locations)
	session, err := sel.ResolveSession(state.Location)
	if err != nil {
		return state, err
	}
	state.Session = session

	names := sel.DriverNames(session.SessionKey)
	driverName := s.SelectOne(KeyDriver, labelDriver, names)
	driver, err := sel.ResolveDriver(session.SessionKey, driverName)
	if err != nil {
		return state, err
	}
	state.Driver = driver

	full := sel.DriverSeries(session.SessionKey, driver.DriverNumber)
	bounds, err := full.Bounds()
	if err != nil {
		return state, err
	}
	state.LapRange = selection.ClampRange(s.SelectRange(KeyLaps, labelLaps, bounds), bounds)
	state.Series = full.InRange(state.LapRange)

	state.Zoom = s.Checkbox(KeyZoom, labelZoom)
	state.Compare = s.Checkbox(KeyCompare, labelCompare)

	fastest, err := analysis.Fastest(state.Series)
	if err != nil {
		return state, err
	}
	state.Fastest = &fastest

	opts := chart.Options{
		Primary:     state.Series,
		PrimaryName: driver.BroadcastName,
		Zoom:        state.Zoom,
	}
	var compareErr error
	if state.Compare {
		compareName := s.SelectOne(KeyCompareDriver, labelCompareDriver, names)
		compare, err := sel.ResolveDriver(session.SessionKey, compareName)
		if err != nil {
			return state, err
		}
		state.CompareDriver = compare
		compareFull := sel.DriverSeries(session.SessionKey, compare.DriverNumber)
		state.CompareSeries = compareFull.InRange(state.LapRange)
		if f, err := analysis.Fastest(state.CompareSeries); err == nil {
			state.CompareFastest = &f
		} else {
			compareErr = err
		}
		opts.Compare = compareFull
		opts.CompareName = compare.BroadcastName
	}

	s.Text(summary(driver.BroadcastName, state.Location, fastest))
	if state.Compare {
		if state.CompareFastest != nil {
			s.Text(summary(state.CompareDriver.BroadcastName, state.Location, *state.CompareFastest))
		} else if compareErr != nil {
			if !isRecoverable(compareErr) {
				return state, compareErr
			}
			s.Warning(fmt.Sprintf("%s: %s", state.CompareDriver.BroadcastName, warnNoData))
		}
	}

	spec, err := chart.Build(opts)
	if err != nil {
		return state, err
	}
	s.Chart(spec)
	return state, nil
}

func summary(driver, location string, f analysis.FastestLap) string {
	return fmt.Sprintf("Driver: %s | Location: %s | Fastest lap: %d (%.3f s)",
		driver, location, f.LapNumber, f.Duration)
}

func warningText(err error) string {
	if analysis.IsNoData(err) {
		return warnNoData
	}
	return err.Error()
}

func isRecoverable(err error) bool {
	return analysis.IsNoData(err) ||
		errors.Is(err, selection.ErrLocationNotFound) ||
		errors.Is(err, selection.ErrAmbiguousLocation) ||
		errors.Is(err, selection.ErrDriverNotFound) ||
		errors.Is(err, selection.ErrAmbiguousDriver)
}
