package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegistration records a variant registration. replaced is true
	// when the value already had a variant.
	RecordRegistration(ctx context.Context, enumType string, replaced bool)

	// RecordLookup records a lookup and whether it found a variant.
	RecordLookup(ctx context.Context, enumType string, found bool)

	// RecordSeal records a registry being sealed with its variant count.
	RecordSeal(ctx context.Context, enumType string, variants int)
}

type otelMetrics struct {
	registrations metric.Int64Counter
	replacements  metric.Int64Counter
	lookups       metric.Int64Counter
	seals         metric.Int64Counter
	variants      metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("smartenum")

	registrations, err := meter.Int64Counter("smartenum.registrations",
		metric.WithDescription("Number of variant registrations"),
	)
	if err != nil {
		return nil, err
	}

	replacements, err := meter.Int64Counter("smartenum.replacements",
		metric.WithDescription("Number of registrations that replaced an existing variant"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("smartenum.lookups",
		metric.WithDescription("Number of variant lookups by value"),
	)
	if err != nil {
		return nil, err
	}

	seals, err := meter.Int64Counter("smartenum.seals",
		metric.WithDescription("Number of registries sealed"),
	)
	if err != nil {
		return nil, err
	}

	variants, err := meter.Int64Histogram("smartenum.variants",
		metric.WithDescription("Variant count of a registry at seal time"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations: registrations,
		replacements:  replacements,
		lookups:       lookups,
		seals:         seals,
		variants:      variants,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider, or a no-op recorder if the instruments cannot be created.
//
// Configure the provider first:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRegistration records a variant registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, enumType string, replaced bool) {
	attrs := metric.WithAttributes(attribute.String("enum_type", enumType))
	m.registrations.Add(ctx, 1, attrs)
	if replaced {
		m.replacements.Add(ctx, 1, attrs)
	}
}

// RecordLookup records a lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, enumType string, found bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("enum_type", enumType),
		attribute.Bool("found", found),
	))
}

// RecordSeal records a registry being sealed.
func (m *otelMetrics) RecordSeal(ctx context.Context, enumType string, variants int) {
	attrs := metric.WithAttributes(attribute.String("enum_type", enumType))
	m.seals.Add(ctx, 1, attrs)
	m.variants.Record(ctx, int64(variants), attrs)
}
