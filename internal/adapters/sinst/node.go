package sinst

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/core/ports"
)

// NodeID is the unique identifier for the shared instruction registry Graft node.
const NodeID graft.ID = "adapter.shared_inst_registry"

func init() {
	graft.Register(graft.Node[ports.SharedInstRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SharedInstRegistry, error) {
			return New(), nil
		},
	})
}
