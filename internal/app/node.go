package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/landdeploy/internal/adapters/artifacts" //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/adapters/ethereum"  //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/landdeploy/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			ethereum.NodeID,
			runner.NodeID,
			store.NodeID,
			store.HasherNodeID,
			artifacts.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	envFactory, err := graft.Dep[ports.EnvironmentFactory](ctx)
	if err != nil {
		return nil, err
	}

	r, err := graft.Dep[*runner.Runner](ctx)
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

	loaderArtifacts, err := graft.Dep[ports.ArtifactLoader](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, envFactory, r, deployments, loaderArtifacts, hasher, tel, log), nil
}
