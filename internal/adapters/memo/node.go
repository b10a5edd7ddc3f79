package memo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/adapters/irootdb"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

// NodeID is the unique identifier for the memoization ledger Graft node.
const NodeID graft.ID = "adapter.memo_ledger"

func init() {
	graft.Register(graft.Node[ports.MemoLedger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{irootdb.NodeID},
		Run: func(ctx context.Context) (ports.MemoLedger, error) {
			store, err := graft.Dep[ports.CandidateStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, domain.DefaultOptions().FailureThreshold), nil
		},
	})
}
