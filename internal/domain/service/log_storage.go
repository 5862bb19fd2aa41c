package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrLogSourceNotFound is returned when the application log file does not exist.
	ErrLogSourceNotFound = errors.New("log source not found")
	// ErrLogObjectNotFound is returned when a generated log file does not exist in the store.
	ErrLogObjectNotFound = errors.New("log object not found")
)

// LogSource reads the application log.
type LogSource interface {
	// Lines returns every line that contains match, in file order.
	Lines(ctx context.Context, match string) ([]string, error)
}

// LogStore keeps generated log extracts.
type LogStore interface {
	// Save writes lines under name, one line per row.
	Save(ctx context.Context, name string, lines []string) error

	// Open returns a reader over a saved extract.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
