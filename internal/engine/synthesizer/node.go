package synthesizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebind/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebind/internal/adapters/xmlconfig" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the synthesizer Graft node.
const NodeID graft.ID = "engine.synthesizer"

func init() {
	graft.Register(graft.Node[*Synthesizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{xmlconfig.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Synthesizer, error) {
			store, err := graft.Dep[ports.BindingDocumentStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, hasher, log), nil
		},
	})
}
