package domain

import "go.trai.ch/zerr"

var (
	// ErrNoSignerAvailable is returned when the environment exposes no signer to deploy from.
	ErrNoSignerAvailable = zerr.New("no signer available")

	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a task references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNoTasksSelected is returned when the requested tags match no registered task.
	ErrNoTasksSelected = zerr.New("no tasks selected")

	// ErrNetworkNotFound is returned when the requested network is not configured.
	ErrNetworkNotFound = zerr.New("network not found")

	// ErrChainIDMismatch is returned when the node reports a different chain ID than configured.
	ErrChainIDMismatch = zerr.New("chain id mismatch")

	// ErrInvalidAccount is returned when a configured account is not a valid private key.
	ErrInvalidAccount = zerr.New("invalid account")

	// ErrUnknownSigner is returned when a deployment is requested from an address with no signer.
	ErrUnknownSigner = zerr.New("unknown signer")

	// ErrConstructorArgs is returned when constructor arguments do not match the contract ABI.
	ErrConstructorArgs = zerr.New("invalid constructor arguments")

	// ErrInvalidRecordName is returned when a network or contract name cannot be used as a record path.
	ErrInvalidRecordName = zerr.New("invalid record name")

	// ErrArtifactNotFound is returned when no compiled artifact exists for a contract.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrArtifactInvalid is returned when an artifact cannot be used for deployment.
	ErrArtifactInvalid = zerr.New("invalid artifact")
)
