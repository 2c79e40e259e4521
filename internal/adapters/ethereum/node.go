package ethereum

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/landdeploy/internal/adapters/artifacts"
	"go.trai.ch/landdeploy/internal/adapters/logger"
	"go.trai.ch/landdeploy/internal/adapters/store"
	"go.trai.ch/landdeploy/internal/core/ports"
)

// NodeID is the unique identifier for the environment factory Graft node.
const NodeID graft.ID = "adapter.ethereum"

func init() {
	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{artifacts.NodeID, store.NodeID, store.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentFactory, error) {
			loader, err := graft.Dep[ports.ArtifactLoader](ctx)
			if err != nil {
				return nil, err
			}
			deployments, err := graft.Dep[ports.DeploymentStore](ctx)
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
			return NewFactory(DialRPC, loader, deployments, hasher, log), nil
		},
	})
}
