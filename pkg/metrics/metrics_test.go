package metrics_test

import (
	"context"
	"testing"

	"commissions/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestNewMeterProvider_ExportsToRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(registry)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	meter := mp.Meter("metrics_test")
	counter := metrics.MustInt64Counter(meter, "test_events", "events seen by the test")
	counter.Add(context.Background(), 2, metric.WithAttributes(attribute.String("kind", "a")))

	histogram := metrics.MustFloat64Histogram(meter, "test_duration", "duration", metrics.RunBuckets)
	histogram.Record(context.Background(), 1.5)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["test_events_total"])
	require.True(t, names["test_duration_seconds"])
}

func TestRunBucketsAreSorted(t *testing.T) {
	for i := 1; i < len(metrics.RunBuckets); i++ {
		require.Less(t, metrics.RunBuckets[i-1], metrics.RunBuckets[i])
	}
}
