// Package landcore deploys the LandCore contract with the deployer as both constructor arguments.
package landcore

import (
	"context"

	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
)

// ContractName is the name of the deployed contract and of this task.
const ContractName = "LandCore"

// Task implements ports.DeployTask for LandCore.
type Task struct{}

// New creates the LandCore deployment task.
func New() *Task {
	return &Task{}
}

// Name returns the task identifier.
func (t *Task) Name() string {
	return ContractName
}

// Tags returns the tags the runner selects this task by.
func (t *Task) Tags() []string {
	return []string{ContractName}
}

// Dependencies returns nil; LandCore has no prerequisite deployments.
func (t *Task) Dependencies() []string {
	return nil
}

// NewRequest builds the LandCore deployment request for a deployer address.
func NewRequest(deployer string) domain.DeploymentRequest {
	return domain.DeploymentRequest{
		ContractName:    ContractName,
		ConstructorArgs: []string{deployer, deployer},
	}
}

// Run deploys LandCore from the first signer of env.
// Errors from the environment are returned as is; nothing is retried.
func (t *Task) Run(ctx context.Context, env ports.Environment) error {
	signers, err := env.Signers(ctx)
	if err != nil {
		return err
	}
	if len(signers) == 0 {
		return domain.ErrNoSignerAvailable
	}

	from, err := signers[0].Address(ctx)
	if err != nil {
		return err
	}

	req := NewRequest(from)
	_, err = env.Deploy(ctx, req.ContractName, req.Options(from))
	return err
}
