package aggregator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebind/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the aggregator Graft node.
const NodeID graft.ID = "engine.aggregator"

func init() {
	graft.Register(graft.Node[*Aggregator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{lockfile.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Aggregator, error) {
			reader, err := graft.Dep[ports.LockfileReader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reader, log), nil
		},
	})
}
