package logfile

import (
	"context"
	"io"
	"strings"

	"store/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const extractContentType = "text/plain; charset=utf-8"

type bucketStore struct {
	bucket *blob.Bucket
}

// NewBucketStore keeps extracts in any gocloud.dev bucket.
func NewBucketStore(bucket *blob.Bucket) service.LogStore {
	return &bucketStore{bucket: bucket}
}

func (s *bucketStore) Save(ctx context.Context, name string, lines []string) error {
	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line)
		content.WriteByte('\n')
	}

	if err := s.bucket.WriteAll(ctx, name, []byte(content.String()), &blob.WriterOptions{
		ContentType: extractContentType,
	}); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}

	return nil
}

func (s *bucketStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrLogObjectNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", name)
	}

	return reader, nil
}
