package ports

// Hasher fingerprints what was deployed so records can be compared with local artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeChecksum returns a stable hex fingerprint of creation bytecode and constructor arguments.
	ComputeChecksum(bytecode []byte, args []string) string
}
