package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"

	"salescli/internal/infrastructure"
)

// OTelMiddleware provides OpenTelemetry instrumentation for HTTP requests.
type OTelMiddleware struct {
	tracer          trace.Tracer
	meter           metric.Meter
	businessMetrics *infrastructure.BusinessMetrics
	logger          *slog.Logger
}

// NewOTelMiddleware creates the instrumentation middleware and the business
// metrics it records into.
func NewOTelMiddleware(providers *infrastructure.OTelProviders) (*OTelMiddleware, error) {
	businessMetrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return &OTelMiddleware{
		tracer:          providers.Tracer,
		meter:           providers.Meter,
		businessMetrics: businessMetrics,
		logger:          providers.Logger,
	}, nil
}

// BusinessMetrics exposes the metrics registry so services can record
// analysis-level measurements through the same instruments.
func (m *OTelMiddleware) BusinessMetrics() *infrastructure.BusinessMetrics {
	return m.businessMetrics
}

// Handler returns the middleware handler function.
func (m *OTelMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(r.Header))

		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		ctx, span := m.tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(r.URL.Path),
				semconv.ServerAddressKey.String(r.Host),
				semconv.UserAgentOriginalKey.String(r.UserAgent()),
				semconv.HTTPRequestBodySizeKey.Int64(r.ContentLength),
				semconv.ClientAddressKey.String(GetRealIP(r)),
			),
		)
		defer span.End()

		traceID := span.SpanContext().TraceID().String()
		ctx = infrastructure.WithTraceID(ctx, traceID)
		r = r.WithContext(ctx)

		ww := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.businessMetrics.HTTPActiveRequests.Add(ctx, 1)
		defer m.businessMetrics.HTTPActiveRequests.Add(ctx, -1)

		start := time.Now()

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		statusCode := ww.statusCode

		attrs := []attribute.KeyValue{
			attribute.String("method", r.Method),
			attribute.String("route", getRoutePattern(r)),
			attribute.Int("status_code", statusCode),
		}

		m.businessMetrics.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
		m.businessMetrics.HTTPRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

		span.SetAttributes(
			semconv.HTTPResponseStatusCodeKey.Int(statusCode),
			semconv.HTTPResponseBodySizeKey.Int64(ww.bytesWritten),
			attribute.Float64("http.request.duration", duration.Seconds()),
		)

		if statusCode >= 400 {
			span.SetStatus(codes.Error, http.StatusText(statusCode))
		}

		m.logger.InfoContext(ctx, "HTTP request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("route", getRoutePattern(r)),
			slog.Int("status_code", statusCode),
			slog.Duration("duration", duration),
			slog.Int64("bytes_written", ww.bytesWritten),
			slog.String("trace_id", traceID),
		)
	})
}

// responseWriter wraps http.ResponseWriter to capture response details.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

// getRoutePattern extracts the chi route pattern from request context.
func getRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return r.URL.Path
}
