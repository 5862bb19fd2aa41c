package entity

import "time"

// LogTaskStatus is the lifecycle state of a log extraction task.
type LogTaskStatus string

const (
	LogTaskInProgress LogTaskStatus = "IN_PROGRESS"
	LogTaskCompleted  LogTaskStatus = "COMPLETED"
	LogTaskFailed     LogTaskStatus = "FAILED"
)

// LogTask tracks one asynchronous extraction of log lines for a date.
// It moves from IN_PROGRESS to exactly one terminal status.
type LogTask struct {
	ID           string        `json:"id"`
	Status       LogTaskStatus `json:"status"`
	Date         string        `json:"date"`
	FilePath     string        `json:"filePath,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// IsTerminal reports whether the task has finished, successfully or not.
func (t *LogTask) IsTerminal() bool {
	return t.Status == LogTaskCompleted || t.Status == LogTaskFailed
}
