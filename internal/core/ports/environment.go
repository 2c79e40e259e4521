// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/landdeploy/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks

// Signer is an entity able to authorize transactions, identified by an address.
type Signer interface {
	// Address resolves the signer's address as a 0x-prefixed hex string.
	Address(ctx context.Context) (string, error)
}

// SignerProvider enumerates the signers available in an environment.
type SignerProvider interface {
	// Signers returns the available signers in their configured order.
	Signers(ctx context.Context) ([]Signer, error)
}

// DeploymentRegistry publishes contracts to the network the environment points at.
type DeploymentRegistry interface {
	// Deploy creates the named contract from opts.From with opts.Args as constructor arguments.
	// It returns once the creation transaction has been mined.
	Deploy(ctx context.Context, name string, opts domain.DeployOptions) (*domain.DeploymentResult, error)
}

// Environment is the capability set handed to deployment tasks.
type Environment interface {
	SignerProvider
	DeploymentRegistry
}

// EnvironmentFactory opens an Environment connected to a configured network.
//
// The returned io.Closer releases the network connection and must be closed by the caller.
type EnvironmentFactory interface {
	Open(ctx context.Context, project *domain.Project, network domain.Network) (Environment, io.Closer, error)
}
