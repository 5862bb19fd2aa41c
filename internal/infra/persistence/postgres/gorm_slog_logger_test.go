package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"store/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(t *testing.T, debug bool) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	return line
}

func TestGormSlogLogger_TraceTruncatesLongSQL(t *testing.T) {
	l, buf := newCapturingGormLogger(t, true)
	longSQL := "INSERT INTO products VALUES " + strings.Repeat("('p', 1, 'c'),", 500)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return longSQL, 500 }, nil)

	line := decodeLogLine(t, buf)
	assert.Equal(t, "GORM query", line["msg"])
	assert.True(t, strings.HasSuffix(line["sql"].(string), "...(truncated)"))
	assert.Len(t, line["sql"].(string), maxLoggedSQLLength+len("...(truncated)"))
	assert.EqualValues(t, 500, line["rows"])
}

func TestGormSlogLogger_TraceOmitsUnknownRows(t *testing.T) {
	l, buf := newCapturingGormLogger(t, true)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", -1 }, nil)

	line := decodeLogLine(t, buf)
	assert.NotContains(t, line, "rows")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsErrors(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, assert.AnError)

	line := decodeLogLine(t, buf)
	assert.Equal(t, "GORM query failed", line["msg"])
	assert.Equal(t, assert.AnError.Error(), line["error"])
}

func TestGormSlogLogger_InfoRespectsLevel(t *testing.T) {
	l, buf := newCapturingGormLogger(t, false)

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "shown %d", 2)
	line := decodeLogLine(t, buf)
	assert.Equal(t, "GORM warn", line["msg"])
	assert.Equal(t, "shown 2", line["message"])
}
