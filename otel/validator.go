// Package otel provides OpenTelemetry instrumentation for femtoclaw
// protocol validation. The core Validator stays pure; this package wraps
// it with span and metric recording for hosts that trace their message
// pipelines.
package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/petal-labs/femtoclaw"
)

const spanName = "femtoclaw.validate"

// InstrumentedValidator decorates a femtoclaw.Validator with one span per
// validation call and outcome metrics. It is as safe for concurrent use
// as the wrapped Validator.
type InstrumentedValidator struct {
	validator *femtoclaw.Validator
	tracer    trace.Tracer
	metrics   *ValidationMetrics
}

// NewInstrumentedValidator wraps v with the given tracer and metrics.
// Either tracer or metrics may be nil to disable that signal.
func NewInstrumentedValidator(v *femtoclaw.Validator, tracer trace.Tracer, metrics *ValidationMetrics) *InstrumentedValidator {
	return &InstrumentedValidator{
		validator: v,
		tracer:    tracer,
		metrics:   metrics,
	}
}

// Validate validates a generic JSON value, recording a span and metrics
// for the outcome.
func (iv *InstrumentedValidator) Validate(ctx context.Context, value any) (femtoclaw.ProtocolOutput, error) {
	return iv.observe(ctx, func() (femtoclaw.ProtocolOutput, error) {
		return iv.validator.Validate(value)
	})
}

// ValidateText parses and validates raw JSON text, recording a span and
// metrics for the outcome.
func (iv *InstrumentedValidator) ValidateText(ctx context.Context, input string) (femtoclaw.ProtocolOutput, error) {
	return iv.observe(ctx, func() (femtoclaw.ProtocolOutput, error) {
		return iv.validator.ValidateText(input)
	})
}

// ValidateBytes parses and validates raw JSON bytes, recording a span and
// metrics for the outcome.
func (iv *InstrumentedValidator) ValidateBytes(ctx context.Context, data []byte) (femtoclaw.ProtocolOutput, error) {
	return iv.observe(ctx, func() (femtoclaw.ProtocolOutput, error) {
		return iv.validator.ValidateBytes(data)
	})
}

// observe runs one validation, annotating the span with the outcome
// attributes and marking failed validations with an error status.
func (iv *InstrumentedValidator) observe(ctx context.Context, validate func() (femtoclaw.ProtocolOutput, error)) (femtoclaw.ProtocolOutput, error) {
	var span trace.Span
	if iv.tracer != nil {
		ctx, span = iv.tracer.Start(ctx, spanName)
		defer span.End()
	}

	start := time.Now()
	out, err := validate()
	elapsed := time.Since(start)

	if span != nil {
		span.SetAttributes(outcomeAttributes(out, err)...)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	if iv.metrics != nil {
		iv.metrics.record(ctx, out, err, elapsed)
	}

	return out, err
}
