package landcore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/landdeploy/internal/core/ports/mocks"
	"go.trai.ch/landdeploy/internal/tasks/landcore"
	"go.uber.org/mock/gomock"
)

func TestTask_Attributes(t *testing.T) {
	task := landcore.New()

	assert.Equal(t, "LandCore", task.Name())
	assert.Equal(t, []string{"LandCore"}, task.Tags())
	assert.Empty(t, task.Dependencies())

	var _ ports.DeployTask = task
}

func TestNewRequest(t *testing.T) {
	for _, addr := range []string{
		"0xAAA",
		"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"",
	} {
		req := landcore.NewRequest(addr)
		assert.Equal(t, "LandCore", req.ContractName)
		require.Len(t, req.ConstructorArgs, 2)
		assert.Equal(t, addr, req.ConstructorArgs[0])
		assert.Equal(t, req.ConstructorArgs[0], req.ConstructorArgs[1])
	}
}

func TestRun_DeploysFromFirstSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mocks.NewMockEnvironment(ctrl)
	first := mocks.NewMockSigner(ctrl)
	second := mocks.NewMockSigner(ctrl)

	gomock.InOrder(
		env.EXPECT().Signers(gomock.Any()).Return([]ports.Signer{first, second}, nil).Times(1),
		first.EXPECT().Address(gomock.Any()).Return("0xAAA", nil).Times(1),
		env.EXPECT().Deploy(gomock.Any(), "LandCore", domain.DeployOptions{
			From: "0xAAA",
			Args: []string{"0xAAA", "0xAAA"},
		}).Return(&domain.DeploymentResult{Name: "LandCore", Address: "0xC0DE"}, nil).Times(1),
	)

	err := landcore.New().Run(context.Background(), env)
	require.NoError(t, err)
}

func TestRun_NoSigners(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mocks.NewMockEnvironment(ctrl)

	env.EXPECT().Signers(gomock.Any()).Return([]ports.Signer{}, nil).Times(1)
	env.EXPECT().Deploy(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := landcore.New().Run(context.Background(), env)
	require.ErrorIs(t, err, domain.ErrNoSignerAvailable)
}

func TestRun_SignersErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mocks.NewMockEnvironment(ctrl)
	signersErr := errors.New("provider unavailable")

	env.EXPECT().Signers(gomock.Any()).Return(nil, signersErr).Times(1)
	env.EXPECT().Deploy(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := landcore.New().Run(context.Background(), env)
	assert.Same(t, signersErr, err)
}

func TestRun_AddressErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mocks.NewMockEnvironment(ctrl)
	signer := mocks.NewMockSigner(ctrl)
	addrErr := errors.New("address resolution failed")

	env.EXPECT().Signers(gomock.Any()).Return([]ports.Signer{signer}, nil)
	signer.EXPECT().Address(gomock.Any()).Return("", addrErr)
	env.EXPECT().Deploy(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := landcore.New().Run(context.Background(), env)
	assert.Same(t, addrErr, err)
}

func TestRun_DeployErrorPropagatesWithoutRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mocks.NewMockEnvironment(ctrl)
	signer := mocks.NewMockSigner(ctrl)
	deployErr := errors.New("insufficient funds for gas * price + value")

	env.EXPECT().Signers(gomock.Any()).Return([]ports.Signer{signer}, nil)
	signer.EXPECT().Address(gomock.Any()).Return("0xAAA", nil)
	env.EXPECT().Deploy(gomock.Any(), "LandCore", gomock.Any()).Return(nil, deployErr).Times(1)

	err := landcore.New().Run(context.Background(), env)
	assert.Same(t, deployErr, err)
}

func TestRun_FromMatchesArgs(t *testing.T) {
	addrs := []string{
		"0x0000000000000000000000000000000000000001",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0xAAA",
	}
	for _, addr := range addrs {
		t.Run(addr, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := mocks.NewMockEnvironment(ctrl)
			signer := mocks.NewMockSigner(ctrl)

			env.EXPECT().Signers(gomock.Any()).Return([]ports.Signer{signer}, nil)
			signer.EXPECT().Address(gomock.Any()).Return(addr, nil)
			env.EXPECT().Deploy(gomock.Any(), "LandCore", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, opts domain.DeployOptions) (*domain.DeploymentResult, error) {
					assert.Equal(t, addr, opts.From)
					require.Len(t, opts.Args, 2)
					assert.Equal(t, opts.From, opts.Args[0])
					assert.Equal(t, opts.From, opts.Args[1])
					return &domain.DeploymentResult{}, nil
				}).Times(1)

			require.NoError(t, landcore.New().Run(context.Background(), env))
		})
	}
}
