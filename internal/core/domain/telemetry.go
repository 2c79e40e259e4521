package domain

// TaskStatus represents the lifecycle state of a task within a single run.
type TaskStatus string

const (
	// TaskStatusPending indicates the task is waiting for its dependencies.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusRunning indicates the task is currently executing.
	TaskStatusRunning TaskStatus = "running"
	// TaskStatusCompleted indicates the task finished successfully.
	TaskStatusCompleted TaskStatus = "completed"
	// TaskStatusFailed indicates the task returned an error.
	TaskStatusFailed TaskStatus = "failed"
	// TaskStatusSkipped indicates the task was not run because an earlier task failed.
	TaskStatusSkipped TaskStatus = "skipped"
)
