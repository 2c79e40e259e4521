package ethereum_test

import (
	"context"
	"errors"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/landdeploy/internal/adapters/artifacts"
	"go.trai.ch/landdeploy/internal/adapters/ethereum"
	"go.trai.ch/landdeploy/internal/adapters/store"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports/mocks"
	"go.trai.ch/landdeploy/internal/tasks/landcore"
	"go.uber.org/mock/gomock"
)

const (
	// Hardhat's first default account.
	deployerKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	deployerAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	// Creation code whose runtime returns 42. Appended constructor arguments are ignored.
	initCode    = "0x600a600c600039600a6000f3602a60005260206000f3"
	runtimeCode = "0x602a60005260206000f3"

	landCoreABI = `[{"type":"constructor","stateMutability":"nonpayable","inputs":[` +
		`{"name":"owner","type":"address"},{"name":"admin","type":"address"}]}]`

	simulatedChainID = 1337
)

type nopCloser struct{ closed *bool }

func (c nopCloser) Close() error {
	if c.closed != nil {
		*c.closed = true
	}
	return nil
}

type fixture struct {
	sim     *simulated.Backend
	project *domain.Project
	factory *ethereum.Factory
	closed  bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	sim := simulated.NewBackend(types.GenesisAlloc{
		common.HexToAddress(deployerAddress): {Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))},
	})
	t.Cleanup(func() { _ = sim.Close() })

	// Mine continuously so WaitDeployed observes the receipt.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				sim.Commit()
			}
		}
	}()
	t.Cleanup(func() {
		close(stop)
		<-done
	})

	root := t.TempDir()
	artifactsDir := filepath.Join(root, "artifacts")
	require.NoError(t, os.MkdirAll(filepath.Join(artifactsDir, "contracts", "LandCore.sol"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(artifactsDir, "contracts", "LandCore.sol", "LandCore.json"),
		[]byte(`{"contractName":"LandCore","sourceName":"contracts/LandCore.sol","abi":`+landCoreABI+`,"bytecode":"`+initCode+`"}`),
		0o600,
	))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	f := &fixture{
		sim: sim,
		project: &domain.Project{
			Root:           root,
			ArtifactsDir:   artifactsDir,
			DeploymentsDir: filepath.Join(root, "deployments"),
		},
	}
	dial := func(_ context.Context, _ string) (ethereum.Backend, io.Closer, error) {
		return sim.Client(), nopCloser{closed: &f.closed}, nil
	}
	f.factory = ethereum.NewFactory(dial, artifacts.NewLoader(), store.NewStore(), store.NewHasher(), log)
	return f
}

func localNetwork() domain.Network {
	return domain.Network{
		Name:     "localhost",
		URL:      "simulated",
		ChainID:  simulatedChainID,
		Accounts: []string{deployerKey},
		Timeout:  30 * time.Second,
	}
}

func TestFactory_Signers(t *testing.T) {
	f := newFixture(t)

	env, closer, err := f.factory.Open(t.Context(), f.project, localNetwork())
	require.NoError(t, err)
	defer closer.Close() //nolint:errcheck // test cleanup

	signers, err := env.Signers(t.Context())
	require.NoError(t, err)
	require.Len(t, signers, 1)

	addr, err := signers[0].Address(t.Context())
	require.NoError(t, err)
	assert.Equal(t, deployerAddress, addr)
}

func TestFactory_NoAccounts(t *testing.T) {
	f := newFixture(t)
	network := localNetwork()
	network.Accounts = nil

	env, closer, err := f.factory.Open(t.Context(), f.project, network)
	require.NoError(t, err)
	defer closer.Close() //nolint:errcheck // test cleanup

	signers, err := env.Signers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, signers)
}

func TestFactory_ChainIDMismatch(t *testing.T) {
	f := newFixture(t)
	network := localNetwork()
	network.ChainID = 1

	_, _, err := f.factory.Open(t.Context(), f.project, network)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
	assert.True(t, f.closed)
}

func TestFactory_InvalidAccount(t *testing.T) {
	dialed := false
	dial := func(_ context.Context, _ string) (ethereum.Backend, io.Closer, error) {
		dialed = true
		return nil, nil, errors.New("unexpected dial")
	}
	factory := ethereum.NewFactory(dial, nil, nil, nil, nil)
	network := localNetwork()
	network.Accounts = []string{"0xnot-a-key"}

	_, _, err := factory.Open(t.Context(), &domain.Project{}, network)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	assert.NotContains(t, err.Error(), "not-a-key")
	assert.False(t, dialed)
}

func TestFactory_DialError(t *testing.T) {
	dialErr := errors.New("connection refused")
	dial := func(_ context.Context, _ string) (ethereum.Backend, io.Closer, error) {
		return nil, nil, dialErr
	}
	factory := ethereum.NewFactory(dial, nil, nil, nil, nil)

	_, _, err := factory.Open(t.Context(), &domain.Project{}, localNetwork())
	require.Error(t, err)
	assert.ErrorIs(t, err, dialErr)
}

func TestRegistry_DeployRecordsDeployment(t *testing.T) {
	f := newFixture(t)

	env, closer, err := f.factory.Open(t.Context(), f.project, localNetwork())
	require.NoError(t, err)
	defer closer.Close() //nolint:errcheck // test cleanup

	args := []string{deployerAddress, deployerAddress}
	result, err := env.Deploy(t.Context(), "LandCore", domain.DeployOptions{From: deployerAddress, Args: args})
	require.NoError(t, err)

	assert.Equal(t, "LandCore", result.Name)
	assert.Equal(t, deployerAddress, result.From)
	assert.Equal(t, args, result.Args)
	assert.NotZero(t, result.GasUsed)
	assert.NotZero(t, result.BlockNumber)

	code, err := f.sim.Client().CodeAt(t.Context(), common.HexToAddress(result.Address), nil)
	require.NoError(t, err)
	assert.Equal(t, hexutil.MustDecode(runtimeCode), code)

	record, err := store.NewStore().Get(f.project.DeploymentsDir, "localhost", "LandCore")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, result.Address, record.Address)
	assert.Equal(t, result.TxHash, record.TxHash)
	assert.Equal(t, uint64(simulatedChainID), record.ChainID)
	assert.Equal(t, store.NewHasher().ComputeChecksum(hexutil.MustDecode(initCode), args), record.Checksum)
	assert.False(t, record.Timestamp.IsZero())
}

func TestRegistry_LandCoreTask(t *testing.T) {
	f := newFixture(t)

	env, closer, err := f.factory.Open(t.Context(), f.project, localNetwork())
	require.NoError(t, err)
	defer closer.Close() //nolint:errcheck // test cleanup

	require.NoError(t, landcore.New().Run(t.Context(), env))

	record, err := store.NewStore().Get(f.project.DeploymentsDir, "localhost", landcore.ContractName)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, deployerAddress, record.From)
	assert.Equal(t, []string{deployerAddress, deployerAddress}, record.Args)
}

func TestRegistry_DeployErrors(t *testing.T) {
	tests := []struct {
		name     string
		contract string
		opts     domain.DeployOptions
		wantErr  error
	}{
		{
			name:     "unknown signer",
			contract: "LandCore",
			opts: domain.DeployOptions{
				From: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
				Args: []string{deployerAddress, deployerAddress},
			},
			wantErr: domain.ErrUnknownSigner,
		},
		{
			name:     "sender is not an address",
			contract: "LandCore",
			opts:     domain.DeployOptions{From: "deployer"},
			wantErr:  domain.ErrUnknownSigner,
		},
		{
			name:     "wrong arity",
			contract: "LandCore",
			opts:     domain.DeployOptions{From: deployerAddress, Args: []string{deployerAddress}},
			wantErr:  domain.ErrConstructorArgs,
		},
		{
			name:     "bad address argument",
			contract: "LandCore",
			opts:     domain.DeployOptions{From: deployerAddress, Args: []string{deployerAddress, "0x12"}},
			wantErr:  domain.ErrConstructorArgs,
		},
		{
			name:     "missing artifact",
			contract: "Marketplace",
			opts:     domain.DeployOptions{From: deployerAddress},
			wantErr:  domain.ErrArtifactNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			env, closer, err := f.factory.Open(t.Context(), f.project, localNetwork())
			require.NoError(t, err)
			defer closer.Close() //nolint:errcheck // test cleanup

			_, err = env.Deploy(t.Context(), tt.contract, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			records, err := store.NewStore().List(f.project.DeploymentsDir, "localhost")
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestRegistry_DeployUnparsableABI(t *testing.T) {
	f := newFixture(t)
	dir := filepath.Join(f.project.ArtifactsDir, "contracts", "Broken.sol")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "Broken.json"),
		[]byte(`{"contractName":"Broken","abi":{"type":"constructor"},"bytecode":"`+initCode+`"}`),
		0o600,
	))

	env, closer, err := f.factory.Open(t.Context(), f.project, localNetwork())
	require.NoError(t, err)
	defer closer.Close() //nolint:errcheck // test cleanup

	_, err = env.Deploy(t.Context(), "Broken", domain.DeployOptions{From: deployerAddress})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArtifactInvalid)
	assert.Contains(t, err.Error(), "cannot unmarshal")
	assert.Contains(t, err.Error(), "cannot parse contract abi")
}

func TestNewSigner(t *testing.T) {
	for _, key := range []string{deployerKey, deployerKey[2:], " " + deployerKey + "\n"} {
		s, err := ethereum.NewSigner(key)
		require.NoError(t, err)

		addr, err := s.Address(t.Context())
		require.NoError(t, err)
		assert.Equal(t, deployerAddress, addr)
	}

	_, err := ethereum.NewSigner("0x1234")
	require.ErrorIs(t, err, domain.ErrInvalidAccount)
}
