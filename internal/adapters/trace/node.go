package trace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/core/ports"
)

// NodeID is the unique identifier for the trace loader Graft node.
const NodeID graft.ID = "adapter.trace_loader"

func init() {
	graft.Register(graft.Node[ports.TraceLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TraceLoader, error) {
			return NewLoader(), nil
		},
	})
}
