package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome attribute values recorded by AuthMetrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDenied  = "denied"
)

// AuthMetrics counts code sends and verifications. A nil *AuthMetrics records nothing.
type AuthMetrics struct {
	sends         metric.Int64Counter
	verifications metric.Int64Counter
}

// NewAuthMetrics registers the auth counters on provider's meter.
func NewAuthMetrics(provider metric.MeterProvider) (*AuthMetrics, error) {
	meter := provider.Meter(instrumentationName)
	sends, err := meter.Int64Counter("likelemba.otp.sends",
		metric.WithDescription("Verification code send attempts by outcome"))
	if err != nil {
		return nil, err
	}
	verifications, err := meter.Int64Counter("likelemba.otp.verifications",
		metric.WithDescription("Verification code checks by outcome"))
	if err != nil {
		return nil, err
	}
	return &AuthMetrics{sends: sends, verifications: verifications}, nil
}

// RecordSend counts one send attempt.
func (m *AuthMetrics) RecordSend(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.sends.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordVerification counts one verification attempt.
func (m *AuthMetrics) RecordVerification(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.verifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
