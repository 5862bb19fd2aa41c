package logfile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"store/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const sampleLog = `time=2024-03-01T10:00:00Z level=INFO msg="Starting API HTTP server"
time=2024-03-01T10:00:05Z level=INFO msg="HTTP Request" uri=/api/products
time=2024-03-02T08:00:00Z level=WARN msg="GORM slow query"
time=2024-03-01T23:59:59Z level=INFO msg="Shutting down API HTTP server"
`

func TestFilterLines(t *testing.T) {
	lines, err := FilterLines(strings.NewReader(sampleLog), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Starting API HTTP server")
	assert.Contains(t, lines[2], "Shutting down")

	none, err := FilterLines(strings.NewReader(sampleLog), "1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFilterLines_LongLine(t *testing.T) {
	long := "2024-03-01 " + strings.Repeat("x", 200*1024)

	lines, err := FilterLines(strings.NewReader(long+"\n"), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], len(long))
}

func TestFilterLines_OversizedLineKeepsScanning(t *testing.T) {
	huge := "2024-03-01 stack " + strings.Repeat("y", 2<<20)
	input := huge + "\r\n" + "2024-03-02 other\n" + "2024-03-01 tail"

	lines, err := FilterLines(strings.NewReader(input), "2024-03-01")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], len(huge))
	assert.Equal(t, "2024-03-01 tail", lines[1])
}

func TestFilterLines_ReadError(t *testing.T) {
	errBroken := errors.New("disk gone")

	_, err := FilterLines(iotest.ErrReader(errBroken), "2024-03-01")
	assert.ErrorIs(t, err, errBroken)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o600))

	lines, err := NewFileSource(path).Lines(context.Background(), "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{`time=2024-03-02T08:00:00Z level=WARN msg="GORM slow query"`}, lines)
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.log")).Lines(context.Background(), "2024-03-01")
	assert.ErrorIs(t, err, service.ErrLogSourceNotFound)
}

func TestBucketStore_SaveOpen(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBucketStore(bucket)

	require.NoError(t, store.Save(ctx, "log-2024-03-01-1.log", []string{"a", "b"}))

	rc, err := store.Open(ctx, "log-2024-03-01-1.log")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestBucketStore_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewBucketStore(bucket).Open(context.Background(), "nope.log")
	assert.ErrorIs(t, err, service.ErrLogObjectNotFound)
}
