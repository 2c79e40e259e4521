// Package domain contains the core domain models for deployment tasks and their records.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents a dependency graph of deployment tasks.
type Graph struct {
	tasks          map[string]Task
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		tasks: make(map[string]Task),
	}
}

// AddTask adds a task to the graph.
// It returns an error if a task with the same name already exists.
func (g *Graph) AddTask(t *Task) error {
	if _, exists := g.tasks[t.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, "cannot add task"), "task_name", t.Name)
	}
	g.tasks[t.Name] = *t
	return nil
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Select returns a new graph containing the tasks carrying any of the given tags
// plus everything they transitively depend on. An empty tag list selects every task.
func (g *Graph) Select(tags []string) (*Graph, error) {
	sub := NewGraph()
	if len(tags) == 0 {
		for name, task := range g.tasks {
			sub.tasks[name] = task
		}
		return sub, nil
	}

	var include func(name string) error
	include = func(name string) error {
		if _, done := sub.tasks[name]; done {
			return nil
		}
		task, ok := g.tasks[name]
		if !ok {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "cannot select task"), "dependency", name)
		}
		sub.tasks[name] = task
		for _, dep := range task.Dependencies {
			if err := include(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range g.sortedNames() {
		task := g.tasks[name]
		if !task.HasAnyTag(tags) {
			continue
		}
		if err := include(name); err != nil {
			return nil, err
		}
	}

	if len(sub.tasks) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrNoTasksSelected, "cannot select tasks"), "tags", strings.Join(tags, ","))
	}
	return sub, nil
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order if successful. Independent tasks are ordered by name.
func (g *Graph) Validate() error {
	g.executionOrder = make([]string, 0, len(g.tasks))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		task, exists := g.tasks[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrMissingDependency, "invalid task graph"), "dependency", u)
		}

		deps := slices.Clone(task.Dependencies)
		slices.Sort(deps)
		for _, dep := range deps {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for _, name := range g.sortedNames() {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) sortedNames() []string {
	names := make([]string, 0, len(g.tasks))
	for name := range g.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid task graph"), "cycle", strings.Join(cycle, " -> "))
}

// Walk returns an iterator that yields tasks in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.tasks[name]) {
				return
			}
		}
	}
}
