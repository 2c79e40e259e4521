package domain

// Artifact is the compiled form of a contract: its ABI and creation bytecode.
type Artifact struct {
	ContractName string
	SourceName   string
	ABI          []byte
	Bytecode     []byte
}
