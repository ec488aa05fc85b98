package model

// TaskStatus represents the status of an export task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusRendering means the base image is loading or being drawn
	TaskStatusRendering TaskStatus = "Rendering"

	// TaskStatusSaving means the rendered surface is being encoded and written
	TaskStatusSaving TaskStatus = "Saving"

	// TaskStatusCompleted means the PNG was written
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the PNG could not be written
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusRendering || ts == TaskStatusSaving
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
