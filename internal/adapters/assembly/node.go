package assembly

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/adapters/logger"
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the assembly inspector Graft node.
const NodeID graft.ID = "adapter.assembly"

func init() {
	graft.Register(graft.Node[ports.ArtifactInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactInspector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(log), nil
		},
	})
}
