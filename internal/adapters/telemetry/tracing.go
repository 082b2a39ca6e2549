package telemetry

import (
	"context"
	"errors"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/rebind/internal/core/ports"
)

// InstrumentationName names the tracer used for run spans.
const InstrumentationName = "go.trai.ch/rebind"

const (
	attrGroup  = "rebind.group"
	attrCached = "rebind.cached"
)

var _ ports.Telemetry = (*Tracing)(nil)

// Tracing mirrors every recorded vertex as an OpenTelemetry span.
type Tracing struct {
	next     ports.Telemetry
	tracer   trace.Tracer
	provider trace.TracerProvider
}

// NewTracing wraps next, starting spans on the given provider.
func NewTracing(next ports.Telemetry, provider trace.TracerProvider) *Tracing {
	return &Tracing{
		next:     next,
		tracer:   provider.Tracer(InstrumentationName),
		provider: provider,
	}
}

// Record starts a span and a vertex of the wrapped telemetry.
func (t *Tracing) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	if cfg.Group != "" {
		span.SetAttributes(attribute.String(attrGroup, cfg.Group))
	}

	ctx, inner := t.next.Record(ctx, name, opts...)
	v := &spanVertex{next: inner, span: span}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes the provider when it supports shutdown and closes the
// wrapped telemetry.
func (t *Tracing) Close() error {
	var errs []error
	if sp, ok := t.provider.(interface{ Shutdown(context.Context) error }); ok {
		if err := sp.Shutdown(context.Background()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := t.next.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

type spanVertex struct {
	next ports.Vertex
	span trace.Span
}

func (v *spanVertex) Stdout() io.Writer { return v.next.Stdout() }
func (v *spanVertex) Stderr() io.Writer { return v.next.Stderr() }

func (v *spanVertex) Complete(err error) {
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	}
	v.span.End()
	v.next.Complete(err)
}

func (v *spanVertex) Cached() {
	v.span.SetAttributes(attribute.Bool(attrCached, true))
	v.next.Cached()
}
