// Package runner selects registered deployment tasks by tag and runs them in dependency order.
package runner

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/landdeploy/internal/core/domain"
	"go.trai.ch/landdeploy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner manages the execution of registered deployment tasks.
type Runner struct {
	tasks     map[string]ports.DeployTask
	telemetry ports.Telemetry
	logger    ports.Logger

	mu         sync.RWMutex
	taskStatus map[string]domain.TaskStatus
}

// New creates a Runner for the given tasks.
// It returns an error if two tasks share a name.
func New(tasks []ports.DeployTask, telemetry ports.Telemetry, logger ports.Logger) (*Runner, error) {
	r := &Runner{
		tasks:      make(map[string]ports.DeployTask, len(tasks)),
		telemetry:  telemetry,
		logger:     logger,
		taskStatus: make(map[string]domain.TaskStatus),
	}
	for _, t := range tasks {
		if _, exists := r.tasks[t.Name()]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrTaskAlreadyExists, "cannot register task"), "task_name", t.Name())
		}
		r.tasks[t.Name()] = t
	}
	return r, nil
}

// Tasks returns the descriptors of all registered tasks sorted by name.
func (r *Runner) Tasks() []domain.Task {
	out := make([]domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, describe(t))
	}
	slices.SortFunc(out, func(a, b domain.Task) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// Plan returns the tasks a run with the given tags would execute, in execution order.
func (r *Runner) Plan(tags []string) ([]domain.Task, error) {
	g := domain.NewGraph()
	for _, t := range r.Tasks() {
		if err := g.AddTask(&t); err != nil {
			return nil, err
		}
	}

	selected, err := g.Select(tags)
	if err != nil {
		return nil, err
	}
	if err := selected.Validate(); err != nil {
		return nil, err
	}

	plan := make([]domain.Task, 0, selected.TaskCount())
	for t := range selected.Walk() {
		plan = append(plan, t)
	}
	return plan, nil
}

// Run executes the tasks selected by tags against env, one at a time.
// The first failing task stops the run; the remaining tasks are marked skipped.
func (r *Runner) Run(ctx context.Context, env ports.Environment, tags []string) error {
	plan, err := r.Plan(tags)
	if err != nil {
		return err
	}

	for _, t := range plan {
		r.updateStatus(t.Name, domain.TaskStatusPending)
	}

	for i, t := range plan {
		if err := ctx.Err(); err != nil {
			r.skip(plan[i:])
			return zerr.Wrap(err, "deployment interrupted")
		}

		if err := r.runTask(ctx, env, r.tasks[t.Name]); err != nil {
			r.skip(plan[i+1:])
			return zerr.With(zerr.Wrap(err, "deploy task failed"), "task", t.Name)
		}
	}

	return nil
}

func (r *Runner) runTask(ctx context.Context, env ports.Environment, task ports.DeployTask) error {
	name := task.Name()
	r.updateStatus(name, domain.TaskStatusRunning)
	r.logger.Info(fmt.Sprintf("running %s", name))

	ctx, vertex := r.telemetry.Record(ctx, name)
	err := task.Run(ctx, env)
	vertex.Complete(err)

	if err != nil {
		r.updateStatus(name, domain.TaskStatusFailed)
		return err
	}
	r.updateStatus(name, domain.TaskStatusCompleted)
	return nil
}

func (r *Runner) skip(rest []domain.Task) {
	for _, t := range rest {
		r.updateStatus(t.Name, domain.TaskStatusSkipped)
	}
}

// Status returns the status of a task in the most recent run.
func (r *Runner) Status(name string) domain.TaskStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.taskStatus[name]
}

func (r *Runner) updateStatus(name string, status domain.TaskStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taskStatus[name] = status
}

func describe(t ports.DeployTask) domain.Task {
	return domain.Task{
		Name:         t.Name(),
		Tags:         slices.Clone(t.Tags()),
		Dependencies: slices.Clone(t.Dependencies()),
	}
}
