// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/landdeploy/internal/adapters/artifacts"
	_ "go.trai.ch/landdeploy/internal/adapters/config"
	_ "go.trai.ch/landdeploy/internal/adapters/ethereum"
	_ "go.trai.ch/landdeploy/internal/adapters/logger"
	_ "go.trai.ch/landdeploy/internal/adapters/store"
	_ "go.trai.ch/landdeploy/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/landdeploy/internal/app"
	_ "go.trai.ch/landdeploy/internal/engine/runner"
)
