package nuget

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/adapters/logger"
	"go.trai.ch/rebind/internal/adapters/shell"
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the registry factory Graft node.
const NodeID graft.ID = "adapter.nuget"

func init() {
	graft.Register(graft.Node[ports.PackageRegistryFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageRegistryFactory, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(executor, log), nil
		},
	})
}
