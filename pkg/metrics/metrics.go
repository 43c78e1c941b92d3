// Package metrics wires OpenTelemetry instruments onto the Prometheus registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// RunBuckets are histogram buckets in seconds for long running batch jobs.
var RunBuckets = []float64{.1, .5, 1, 5, 10, 30, 60, 300, 900, 1800} //nolint: gochecknoglobals

// NewMeterProvider creates a meter provider exporting to registerer and
// installs it as the global otel meter provider.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter of the global provider. Instruments created from
// it before NewMeterProvider is called start reporting once it is.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// MustInt64Counter creates a counter, reporting creation errors to the otel
// error handler instead of failing.
func MustInt64Counter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
	}

	return counter
}

// MustFloat64Histogram creates a histogram in seconds with the given buckets.
func MustFloat64Histogram(meter metric.Meter, name, description string, buckets []float64) metric.Float64Histogram {
	histogram, err := meter.Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(buckets...))
	if err != nil {
		otel.Handle(err)
	}

	return histogram
}
