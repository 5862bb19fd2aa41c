package logfile

import (
	"context"
	"log/slog"

	"store/config"
	"store/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// StoreParams holds dependencies for the log extract store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore opens the bucket configured for extracts. BucketURL wins over OutputDir.
func NewStore(params StoreParams) (service.LogStore, error) {
	cfg := params.Config.Logs

	var (
		bucket *blob.Bucket
		err    error
	)
	if cfg.BucketURL != "" {
		params.Logger.Info("Using blob bucket for log extracts", slog.String("url", cfg.BucketURL))
		bucket, err = blob.OpenBucket(params.Ctx, cfg.BucketURL)
	} else {
		params.Logger.Info("Using local directory for log extracts", slog.String("dir", cfg.OutputDir))
		bucket, err = fileblob.OpenBucket(cfg.OutputDir, &fileblob.Options{CreateDir: true})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log extract bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStore(bucket), nil
}

// NewSource reads the configured application log.
func NewSource(cfg *config.Config) service.LogSource {
	return NewFileSource(cfg.Logs.SourcePath)
}
