// Package progrock records run progress on a progrock tape.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/rebind/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock recorder. Vertices
// started with WithGroup land in a named group per stage.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu     sync.Mutex
	groups map[string]*progrock.Recorder
	seq    map[string]int
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		groups: make(map[string]*progrock.Recorder),
		seq:    make(map[string]int),
	}
}

// Record starts a vertex. Repeated names get distinct digests so that each
// call is its own vertex on the tape.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r.mu.Lock()
	rec := r.rec
	if cfg.Group != "" {
		g, ok := r.groups[cfg.Group]
		if !ok {
			g = r.rec.WithGroup(cfg.Group)
			r.groups[cfg.Group] = g
		}
		rec = g
	}
	id := cfg.Group + "/" + name
	r.seq[id]++
	d := digest.FromString(id + "#" + strconv.Itoa(r.seq[id]))
	r.mu.Unlock()

	vertex := &Vertex{vertex: rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close closes the writer when it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
