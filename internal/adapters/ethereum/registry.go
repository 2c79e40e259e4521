package ethereum

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DeploymentRegistry = (*Registry)(nil)

// Registry deploys compiled contracts to one network and records the result.
type Registry struct {
	backend   Backend
	project   *domain.Project
	network   domain.Network
	chainID   *big.Int
	keys      map[common.Address]*ecdsa.PrivateKey
	artifacts ports.ArtifactLoader
	store     ports.DeploymentStore
	hasher    ports.Hasher
	logger    ports.Logger
	now       func() time.Time
}

// Deploy sends the contract creation for name from opts.From and waits until it is mined.
func (r *Registry) Deploy(ctx context.Context, name string, opts domain.DeployOptions) (*domain.DeploymentResult, error) {
	result, err := r.deploy(ctx, name, opts)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "cannot deploy contract"), "contract", name), "network", r.network.Name)
	}
	return result, nil
}

func (r *Registry) deploy(ctx context.Context, name string, opts domain.DeployOptions) (*domain.DeploymentResult, error) {
	artifact, err := r.artifacts.Load(r.project.ArtifactsDir, name)
	if err != nil {
		return nil, err
	}

	key, err := r.signerKey(opts.From)
	if err != nil {
		return nil, err
	}

	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrArtifactInvalid, err), "cannot parse contract abi")
	}

	params, err := convertArgs(parsed.Constructor.Inputs, opts.Args)
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, r.chainID)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create transactor")
	}
	auth.Context = ctx

	r.logger.Info(fmt.Sprintf("deploying %s (%s) from %s", name, humanize.Bytes(uint64(len(artifact.Bytecode))), auth.From.Hex()))

	address, tx, _, err := bind.DeployContract(auth, parsed, artifact.Bytecode, r.backend, params...)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to send contract creation")
	}

	waitCtx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	if _, err := bind.WaitDeployed(waitCtx, r.backend, tx); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "contract creation was not mined"), "tx", tx.Hash().Hex())
	}

	receipt, err := r.backend.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch receipt"), "tx", tx.Hash().Hex())
	}

	record := domain.Deployment{
		Name:        name,
		Network:     r.network.Name,
		ChainID:     r.chainID.Uint64(),
		Address:     address.Hex(),
		TxHash:      tx.Hash().Hex(),
		From:        auth.From.Hex(),
		Args:        append([]string(nil), opts.Args...),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Checksum:    r.hasher.ComputeChecksum(artifact.Bytecode, opts.Args),
		Timestamp:   r.now().UTC(),
	}

	r.logger.Info(fmt.Sprintf("deployed %s at %s (block %d, %s gas)",
		name, record.Address, record.BlockNumber, humanize.Comma(int64(record.GasUsed)))) //nolint:gosec // gas fits in int64

	if err := r.store.Put(r.project.DeploymentsDir, record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "contract deployed but not recorded"), "address", record.Address)
	}

	return record.Result(), nil
}

func (r *Registry) signerKey(from string) (*ecdsa.PrivateKey, error) {
	if !common.IsHexAddress(from) {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSigner, "sender is not an address"), "from", from)
	}
	key, ok := r.keys[common.HexToAddress(from)]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSigner, "no key for sender"), "from", from)
	}
	return key, nil
}

func (r *Registry) timeout() time.Duration {
	if r.network.Timeout > 0 {
		return r.network.Timeout
	}
	return domain.DefaultNetworkTimeout
}
