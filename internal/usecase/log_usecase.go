package usecase

import (
	"context"
	"io"

	"store/internal/domain/entity"
)

// LogUsecase extracts application log lines by date.
type LogUsecase interface {
	// GenerateLogFile registers an extraction task and returns its id without waiting for it.
	GenerateLogFile(ctx context.Context, date string) (string, error)

	// GetTaskStatus returns a snapshot of the task.
	GetTaskStatus(ctx context.Context, taskID string) (*entity.LogTask, error)

	// OpenLogFile returns the generated extract and its file name. The task must be completed.
	OpenLogFile(ctx context.Context, taskID string) (io.ReadCloser, string, error)

	// GetLogsByDate filters the log synchronously and returns matching lines joined by newlines.
	GetLogsByDate(ctx context.Context, date string) (string, error)
}
