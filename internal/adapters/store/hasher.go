package store

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/landdeploy/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes deployment checksums with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeChecksum hashes the creation bytecode followed by each constructor argument.
func (h *Hasher) ComputeChecksum(bytecode []byte, args []string) string {
	hasher := xxhash.New()

	_, _ = hasher.Write(bytecode)
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, arg := range args {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
