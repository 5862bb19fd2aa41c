package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"store/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

// New creates the application logger. Records go to stdout and are appended to
// the configured log source so that log extraction can read them back.
func New(params Params) (*slog.Logger, error) {
	var out io.Writer = os.Stdout

	if params.Config.Logs != nil && params.Config.Logs.SourcePath != "" {
		file, err := openSourceFile(params.Config.Logs.SourcePath)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stdout, file)

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return file.Close()
			},
		})
	}

	return NewWithWriter(out, params.Config)
}

// NewWithWriter builds a logger that writes to w using the level and format from cfg.
func NewWithWriter(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Env.Log.Pretty {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

func openSourceFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create log directory")
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	return file, nil
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
