package otel

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/petal-labs/femtoclaw"
)

// ValidationMetrics records OpenTelemetry metrics for protocol validation
// outcomes: counters for total validations and failures, and a histogram
// for validation duration.
type ValidationMetrics struct {
	validations metric.Int64Counter
	failures    metric.Int64Counter
	duration    metric.Float64Histogram
}

// NewValidationMetrics creates a ValidationMetrics that uses the given
// meter to create its instruments.
func NewValidationMetrics(meter metric.Meter) (*ValidationMetrics, error) {
	validations, err := meter.Int64Counter("femtoclaw.validations",
		metric.WithDescription("Number of protocol validations"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("femtoclaw.validation.failures",
		metric.WithDescription("Number of failed protocol validations"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("femtoclaw.validation.duration",
		metric.WithDescription("Duration of protocol validation in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ValidationMetrics{
		validations: validations,
		failures:    failures,
		duration:    duration,
	}, nil
}

// record registers one validation outcome.
func (m *ValidationMetrics) record(ctx context.Context, out femtoclaw.ProtocolOutput, err error, elapsed time.Duration) {
	attrs := metric.WithAttributes(outcomeAttributes(out, err)...)
	m.validations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
	if err != nil {
		m.failures.Add(ctx, 1, attrs)
	}
}

// outcomeAttributes derives the attribute set for a validation outcome:
// the output kind on success, the error kind (and field path, when one is
// known) on failure.
func outcomeAttributes(out femtoclaw.ProtocolOutput, err error) []attribute.KeyValue {
	if err == nil {
		return []attribute.KeyValue{
			attribute.String("femtoclaw.output_kind", out.Kind().String()),
		}
	}

	var verr *femtoclaw.ValidationError
	if !errors.As(err, &verr) {
		return []attribute.KeyValue{
			attribute.String("femtoclaw.error_kind", "unknown"),
		}
	}

	attrs := []attribute.KeyValue{
		attribute.String("femtoclaw.error_kind", verr.Kind.String()),
	}
	if verr.Path != "" {
		attrs = append(attrs, attribute.String("femtoclaw.error_path", verr.Path))
	}
	return attrs
}
