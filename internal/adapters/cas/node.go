package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the identity store Graft node.
const NodeID graft.ID = "adapter.identity_store"

func init() {
	graft.Register(graft.Node[ports.IdentityStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityStore, error) {
			return NewStore(), nil
		},
	})
}
