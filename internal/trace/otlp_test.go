package trace

import (
	"context"
	"testing"

	"ligonsite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), config.TraceConfig{})
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))

	// A nil provider's tracer accepts spans without exporting them.
	_, span := p.Tracer().Start(context.Background(), "nav.navigate")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestNewProvider_Enabled(t *testing.T) {
	p, err := NewProvider(context.Background(), config.TraceConfig{
		Endpoint: "localhost:4318",
		Insecure: true,
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_TracerRecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := newProvider(sdktrace.WithSpanProcessor(sr))

	_, span := p.Tracer().Start(context.Background(), "tabs.select")
	span.SetAttributes(PageAttributes("page-1")...)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tabs.select", spans[0].Name())
	assert.Equal(t, InstrumentationName, spans[0].InstrumentationScope().Name)
	assert.Equal(t, PageAttributes("page-1"), spans[0].Attributes())
	require.NoError(t, p.Shutdown(context.Background()))
}
