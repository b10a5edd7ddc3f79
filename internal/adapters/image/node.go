package image

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iroot/internal/core/ports"
)

// NodeID is the unique identifier for the image classifier Graft node.
const NodeID graft.ID = "adapter.image_classifier"

func init() {
	graft.Register(graft.Node[ports.ImageClassifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageClassifier, error) {
			return NewClassifier(), nil
		},
	})
}
