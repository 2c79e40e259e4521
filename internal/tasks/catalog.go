// Package tasks holds the catalogue of deployment tasks known to the runner.
package tasks

import (
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/landdeploy/internal/tasks/landcore"
)

// All returns every registered deployment task.
func All() []ports.DeployTask {
	return []ports.DeployTask{
		landcore.New(),
	}
}
