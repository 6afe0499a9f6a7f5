package model

import "time"

// TaskStatus represents the status of a save task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusSaving means the image is being downloaded and written
	TaskStatusSaving TaskStatus = "Saving"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusSaving
}

// IsFinished returns true if the task is in a finished state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// SaveTask represents a single save-image-to-disk task
type SaveTask struct {
	ID         string
	URL        string
	Breed      string
	OutputPath string
	Status     TaskStatus
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}
