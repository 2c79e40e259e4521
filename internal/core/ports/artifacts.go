package ports

import "go.trai.ch/landdeploy/internal/core/domain"

// ArtifactLoader resolves compiled contract artifacts by contract name.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactLoader interface {
	// Load returns the artifact for the named contract from the given artifacts directory.
	Load(dir, name string) (*domain.Artifact, error)
}
