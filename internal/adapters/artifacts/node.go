package artifacts

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/landdeploy/internal/core/ports"
)

// NodeID is the unique identifier for the artifact loader Graft node.
const NodeID graft.ID = "adapter.artifacts"

func init() {
	graft.Register(graft.Node[ports.ArtifactLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactLoader, error) {
			return NewLoader(), nil
		},
	})
}
