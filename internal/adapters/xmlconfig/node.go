package xmlconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebind/internal/core/ports"
)

// NodeID is the unique identifier for the binding document store Graft node.
const NodeID graft.ID = "adapter.xmlconfig"

func init() {
	graft.Register(graft.Node[ports.BindingDocumentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BindingDocumentStore, error) {
			return NewStore(), nil
		},
	})
}
