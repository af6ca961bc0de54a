package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_Default(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx, log := WithRequestID(context.Background(), zap.New(core), "req-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	log.Info("hello")
	FromContext(ctx).Info("again")

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	}
}

func TestL_AddsTraceContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	ctx = WithContext(ctx, zap.New(core))
	L(ctx).Info("traced")
	L(WithContext(context.Background(), zap.New(core))).Info("untraced")

	require.Equal(t, 2, logs.Len())
	traced := logs.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), traced["trace_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "trace_id")
}
