package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type catalogImportMetrics struct {
	requests metric.Int64Counter
	accepted metric.Int64Counter
	rejected metric.Int64Counter
}

func newCatalogImportMetrics() catalogImportMetrics {
	meter := otel.Meter("github.com/fr0stylo/partnerhub/internal/app/services")
	requests, _ := meter.Int64Counter("partnerhub.catalog.import.requests")
	accepted, _ := meter.Int64Counter("partnerhub.catalog.import.rows.accepted")
	rejected, _ := meter.Int64Counter("partnerhub.catalog.import.rows.rejected")
	return catalogImportMetrics{
		requests: requests,
		accepted: accepted,
		rejected: rejected,
	}
}

func (m catalogImportMetrics) recordRequest(ctx context.Context, source string, kind ImportErrorKind, ok bool) {
	if m.requests == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = string(kind)
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("outcome", outcome),
	))
}

func (m catalogImportMetrics) recordRows(ctx context.Context, source string, accepted, rejected int) {
	attrs := metric.WithAttributes(attribute.String("source", source))
	if m.accepted != nil && accepted > 0 {
		m.accepted.Add(ctx, int64(accepted), attrs)
	}
	if m.rejected != nil && rejected > 0 {
		m.rejected.Add(ctx, int64(rejected), attrs)
	}
}
