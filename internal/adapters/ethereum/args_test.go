package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/landdeploy/internal/core/domain"
)

func mustType(t *testing.T, name string) abi.Type {
	t.Helper()
	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

func TestConvertArg(t *testing.T) {
	const deployer = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	tests := []struct {
		typ  string
		in   string
		want any
	}{
		{"address", deployer, common.HexToAddress(deployer)},
		{"string", "land", "land"},
		{"bool", "true", true},
		{"uint8", "255", uint8(255)},
		{"int8", "-128", int8(-128)},
		{"uint64", "0x10", uint64(16)},
		{"int64", "-1", int64(-1)},
		{"uint256", "1000000000000000000", big.NewInt(1_000_000_000_000_000_000)},
		{"int24", "-5", big.NewInt(-5)},
		{"bytes4", "0x01020304", [4]byte{1, 2, 3, 4}},
		{"bytes", "0xbeef", []byte{0xbe, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.in, func(t *testing.T) {
			got, err := convertArg(mustType(t, tt.typ), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertArg_Invalid(t *testing.T) {
	tests := []struct {
		typ string
		in  string
	}{
		{"address", "0x1234"},
		{"bool", "maybe"},
		{"uint8", "256"},
		{"int8", "128"},
		{"int8", "-129"},
		{"uint256", "-1"},
		{"uint256", "ten"},
		{"bytes32", "0x01"},
		{"bytes", "beef"},
		{"address[]", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.in, func(t *testing.T) {
			_, err := convertArg(mustType(t, tt.typ), tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConstructorArgs)
		})
	}
}

func TestConvertArgs_Arity(t *testing.T) {
	inputs := abi.Arguments{
		{Name: "owner", Type: mustType(t, "address")},
		{Name: "admin", Type: mustType(t, "address")},
	}

	_, err := convertArgs(inputs, []string{"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstructorArgs)

	_, err = convertArgs(nil, []string{"x"})
	require.ErrorIs(t, err, domain.ErrConstructorArgs)

	got, err := convertArgs(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
