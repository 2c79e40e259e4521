package ethereum

import (
	"context"
	"crypto/ecdsa"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Environment        = (*Environment)(nil)
	_ ports.EnvironmentFactory = (*Factory)(nil)
)

// Environment exposes the configured signers and the registry of one network.
type Environment struct {
	*Registry
	signers []*Signer
}

// Signers returns the configured signers in configuration order.
func (e *Environment) Signers(_ context.Context) ([]ports.Signer, error) {
	out := make([]ports.Signer, len(e.signers))
	for i, s := range e.signers {
		out[i] = s
	}
	return out, nil
}

// Factory opens Environments against configured networks.
type Factory struct {
	dial      Dialer
	artifacts ports.ArtifactLoader
	store     ports.DeploymentStore
	hasher    ports.Hasher
	logger    ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	dial Dialer,
	artifacts ports.ArtifactLoader,
	store ports.DeploymentStore,
	hasher ports.Hasher,
	logger ports.Logger,
) *Factory {
	return &Factory{
		dial:      dial,
		artifacts: artifacts,
		store:     store,
		hasher:    hasher,
		logger:    logger,
	}
}

// Open dials the network, checks its chain ID and loads the configured signers.
func (f *Factory) Open(
	ctx context.Context,
	project *domain.Project,
	network domain.Network,
) (ports.Environment, io.Closer, error) {
	signers, err := parseSigners(network)
	if err != nil {
		return nil, nil, err
	}

	backend, closer, err := f.dial(ctx, network.URL)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "cannot connect to network"), "network", network.Name)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		_ = closer.Close()
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to query chain id"), "network", network.Name)
	}
	if network.ChainID != 0 && (!chainID.IsUint64() || chainID.Uint64() != network.ChainID) {
		_ = closer.Close()
		return nil, nil, zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrChainIDMismatch, "connected to the wrong chain"),
			"network", network.Name), "expected", network.ChainID), "actual", chainID.String())
	}

	keys := make(map[common.Address]*ecdsa.PrivateKey, len(signers))
	for _, s := range signers {
		keys[s.address] = s.key
	}

	env := &Environment{
		Registry: &Registry{
			backend:   backend,
			project:   project,
			network:   network,
			chainID:   chainID,
			keys:      keys,
			artifacts: f.artifacts,
			store:     f.store,
			hasher:    f.hasher,
			logger:    f.logger,
			now:       time.Now,
		},
		signers: signers,
	}
	return env, closer, nil
}
