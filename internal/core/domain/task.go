package domain

import "slices"

// Task describes a registered deployment task.
// Tags are used by the runner to select tasks; Dependencies name tasks that must run first.
type Task struct {
	Name         string
	Tags         []string
	Dependencies []string
}

// HasAnyTag reports whether the task carries at least one of the given tags.
func (t *Task) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if slices.Contains(t.Tags, tag) {
			return true
		}
	}
	return false
}
