package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/version"
)

const StdoutEndpoint = "stdout"

type Telemetry struct {
	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider
}

// SetupTelemetry installs global trace and meter providers.
// The exporters send to TelemetryEndpoint via OTLP/gRPC or print to stdout.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", "f1laps"),
		attribute.String("service.version", version.Version),
	)
	var (
		traceExp  sdktrace.SpanExporter
		metricExp sdkmetric.Exporter
		err       error
	)
	if TelemetryEndpoint == StdoutEndpoint {
		if traceExp, err = stdouttrace.New(stdouttrace.WithPrettyPrint()); err != nil {
			return nil, err
		}
		if metricExp, err = stdoutmetric.New(); err != nil {
			return nil, err
		}
	} else {
		if traceExp, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(TelemetryEndpoint),
			otlptracegrpc.WithInsecure()); err != nil {
			return nil, err
		}
		if metricExp, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(TelemetryEndpoint),
			otlpmetricgrpc.WithInsecure()); err != nil {
			return nil, err
		}
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp,
			sdkmetric.WithInterval(15*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	return &Telemetry{tp: tp, mp: mp}, nil
}

func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := errors.Join(t.tp.Shutdown(ctx), t.mp.Shutdown(ctx))
	if err != nil {
		log.Warn("error shutting down telemetry", log.ErrorField(err))
	}
}
