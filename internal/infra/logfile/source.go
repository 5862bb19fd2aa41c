package logfile

import (
	"context"
	"io/fs"
	"os"

	"store/internal/domain/service"

	"github.com/pkg/errors"
)

type fileSource struct {
	path string
}

// NewFileSource reads the log file at path on every call.
func NewFileSource(path string) service.LogSource {
	return &fileSource{path: path}
}

func (s *fileSource) Lines(_ context.Context, match string) ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, service.ErrLogSourceNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", s.path)
	}
	defer file.Close()

	return FilterLines(file, match)
}
