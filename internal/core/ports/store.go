package ports

import "go.trai.ch/landdeploy/internal/core/domain"

// DeploymentStore defines the interface for recording deployments per network.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DeploymentStore interface {
	// Get retrieves the deployment record of a contract on a network.
	// Returns nil, nil if not found.
	Get(dir, network, name string) (*domain.Deployment, error)

	// List returns all deployment records of a network sorted by contract name.
	List(dir, network string) ([]domain.Deployment, error)

	// Put stores the deployment record.
	Put(dir string, d domain.Deployment) error
}
