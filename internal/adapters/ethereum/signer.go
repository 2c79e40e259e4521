package ethereum

import (
	"context"
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Signer = (*Signer)(nil)

// Signer is a configured private key able to authorize transactions.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner parses a hex private key, with or without a 0x prefix.
func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, zerr.Wrap(domain.ErrInvalidAccount, "cannot parse private key")
	}
	return &Signer{key: key, address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// Address returns the EIP-55 checksummed address of the signer.
func (s *Signer) Address(_ context.Context) (string, error) {
	return s.address.Hex(), nil
}

func parseSigners(network domain.Network) ([]*Signer, error) {
	signers := make([]*Signer, 0, len(network.Accounts))
	for i, account := range network.Accounts {
		signer, err := NewSigner(account)
		if err != nil {
			// The key itself is never attached to the error.
			return nil, zerr.With(zerr.With(err, "network", network.Name), "account", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}
