package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=task.go -destination=mocks/mock_task.go -package=mocks

// DeployTask is a unit of deployment work selectable by tag.
type DeployTask interface {
	// Name identifies the task; it is also what other tasks list as a dependency.
	Name() string
	// Tags classifies the task for selection by the runner.
	Tags() []string
	// Dependencies lists the tasks that must run before this one.
	Dependencies() []string
	// Run performs the deployment against env.
	Run(ctx context.Context, env Environment) error
}
