package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/landdeploy/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/landdeploy/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/landdeploy/internal/tasks"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(tasks.All(), tel, log)
		},
	})
}
