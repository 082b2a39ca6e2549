package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/rebind/internal/adapters/logger"
	"go.trai.ch/rebind/internal/adapters/telemetry/progrock"
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tp := NewProvider(log)
			otel.SetTracerProvider(tp)
			return NewTracing(progrock.New(), tp), nil
		},
	})
}
