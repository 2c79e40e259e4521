// Package app implements the application layer for landdeploy.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/landdeploy/internal/engine/runner"
	"go.trai.ch/zerr"
)

// Drift describes how a recorded deployment compares to the local artifact.
type Drift string

const (
	// DriftCurrent means the local artifact and arguments match the record.
	DriftCurrent Drift = "current"
	// DriftChanged means the local artifact or arguments differ from what was deployed.
	DriftChanged Drift = "changed"
	// DriftUnknown means the record cannot be compared, for lack of an artifact or checksum.
	DriftUnknown Drift = "unknown"
)

// DeploymentStatus is a recorded deployment together with its drift state.
type DeploymentStatus struct {
	domain.Deployment
	Drift Drift
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	envFactory   ports.EnvironmentFactory
	runner       *runner.Runner
	store        ports.DeploymentStore
	artifacts    ports.ArtifactLoader
	hasher       ports.Hasher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	envFactory ports.EnvironmentFactory,
	r *runner.Runner,
	store ports.DeploymentStore,
	artifacts ports.ArtifactLoader,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		envFactory:   envFactory,
		runner:       r,
		store:        store,
		artifacts:    artifacts,
		hasher:       hasher,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Deploy runs the deployment tasks selected by tags against the named network.
func (a *App) Deploy(ctx context.Context, configPath, networkName string, tags []string) error {
	// 1. Load the project
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	network, err := project.Network(networkName)
	if err != nil {
		return err
	}

	// 2. Fail on an unknown tag before touching the network
	if _, err := a.runner.Plan(tags); err != nil {
		return err
	}

	// 3. Connect
	env, closer, err := a.envFactory.Open(ctx, project, network)
	if err != nil {
		return zerr.Wrap(err, "failed to open environment")
	}
	defer closeQuietly(closer)

	a.logger.Info(fmt.Sprintf("deploying to %s (%s)", network.Name, network.URL))

	// 4. Run the tasks
	return a.runner.Run(ctx, env, tags)
}

// Tasks returns the registered deployment tasks sorted by name.
func (a *App) Tasks() []domain.Task {
	return a.runner.Tasks()
}

// Deployments lists the recorded deployments of a network and compares them to the local artifacts.
func (a *App) Deployments(configPath, networkName string) ([]DeploymentStatus, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	records, err := a.store.List(project.DeploymentsDir, networkName)
	if err != nil {
		return nil, err
	}

	out := make([]DeploymentStatus, 0, len(records))
	for _, record := range records {
		out = append(out, DeploymentStatus{Deployment: record, Drift: a.drift(project, record)})
	}
	return out, nil
}

func (a *App) drift(project *domain.Project, record domain.Deployment) Drift {
	if record.Checksum == "" {
		return DriftUnknown
	}
	artifact, err := a.artifacts.Load(project.ArtifactsDir, record.Name)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cannot compare %s with its artifact: %v", record.Name, err))
		return DriftUnknown
	}
	if a.hasher.ComputeChecksum(artifact.Bytecode, record.Args) != record.Checksum {
		return DriftChanged
	}
	return DriftCurrent
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
