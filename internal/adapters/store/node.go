package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/landdeploy/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the deployment store Graft node.
	NodeID graft.ID = "adapter.deployment_store"
	// HasherNodeID is the unique identifier for the checksum hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
)

func init() {
	graft.Register(graft.Node[ports.DeploymentStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DeploymentStore, error) {
			return NewStore(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
