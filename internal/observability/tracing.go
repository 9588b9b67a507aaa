package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName      = "partnerhub/db"
	serviceTracerName = "partnerhub/services"
)

type contextKey string

const (
	vendorIDKey  contextKey = "observability.vendor_id"
	requestIDKey contextKey = "observability.request_id"
	routeKey     contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
	SetAttributes(...attribute.KeyValue)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", "sqlite"),
		attribute.String("db.query_name", queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	if vendorID, ok := VendorIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.Int64("partnerhub.vendor_id", vendorID))
	}

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// StartServiceSpan starts an internal span for one application operation.
func StartServiceSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, Span) {
	ctx, span := otel.Tracer(serviceTracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithVendor records the authenticated vendor on the context and current span.
func WithVendor(ctx context.Context, vendorID int64) context.Context {
	if vendorID <= 0 {
		return ctx
	}
	ctx = context.WithValue(ctx, vendorIDKey, vendorID)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("partnerhub.vendor_id", vendorID))
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
		attrs = append(attrs, attribute.String("http.route", route))
	}
	if len(attrs) > 0 {
		trace.SpanFromContext(ctx).SetAttributes(attrs...)
	}
	return ctx
}

// VendorIDFromContext extracts the authenticated vendor id.
func VendorIDFromContext(ctx context.Context) (int64, bool) {
	value, ok := ctx.Value(vendorIDKey).(int64)
	return value, ok && value > 0
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(requestIDKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(routeKey).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) SetAttributes(attrs ...attribute.KeyValue) {
	if s.inner == nil || len(attrs) == 0 {
		return
	}
	s.inner.SetAttributes(attrs...)
}
