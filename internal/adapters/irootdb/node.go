package irootdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/core/ports"
)

// NodeID is the unique identifier for the candidate store Graft node.
const NodeID graft.ID = "adapter.candidate_store"

func init() {
	graft.Register(graft.Node[ports.CandidateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CandidateStore, error) {
			return New(), nil
		},
	})
}
