package model

// TaskState represents which list a task belongs to
type TaskState string

const (
	// TaskStateActive means the task is not completed yet
	TaskStateActive TaskState = "Active"

	// TaskStateCompleted means the task was marked complete
	TaskStateCompleted TaskState = "Completed"
)

// String returns the string representation of TaskState
func (ts TaskState) String() string {
	return string(ts)
}

// IsActive returns true if the task still belongs to the active list
func (ts TaskState) IsActive() bool {
	return ts == TaskStateActive
}

// IsFinished returns true if the task has been completed
func (ts TaskState) IsFinished() bool {
	return ts == TaskStateCompleted
}
