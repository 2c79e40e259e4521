// Package ethereum connects deployment tasks to an EVM network through go-ethereum.
package ethereum

import (
	"context"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.trai.ch/zerr"
)

// Backend is the subset of an Ethereum RPC client needed to send and confirm contract creations.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Dialer opens a Backend for an RPC URL. The returned io.Closer releases the connection.
type Dialer func(ctx context.Context, url string) (Backend, io.Closer, error)

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// DialRPC dials a JSON-RPC endpoint with ethclient.
func DialRPC(ctx context.Context, url string) (Backend, io.Closer, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to dial rpc endpoint"), "url", url)
	}
	return client, closerFunc(client.Close), nil
}
