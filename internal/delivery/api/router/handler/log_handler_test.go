package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	mockUsecase "store/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestLogHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockLogUsecase) {
	logUC := mockUsecase.NewMockLogUsecase(t)
	h := NewLogHandler(LogHandlerParams{LogUC: logUC})

	e := newTestEcho()
	e.POST("/api/logs/generate", h.GenerateLogFile)
	e.GET("/api/logs/status/:taskId", h.GetTaskStatus)
	e.GET("/api/logs/download/:taskId", h.DownloadLogFile)
	e.GET("/api/logs/by-date", h.GetLogsByDate)

	return e, logUC
}

func TestLogHandler_GenerateLogFile(t *testing.T) {
	e, logUC := createTestLogHandler(t)

	logUC.EXPECT().GenerateLogFile(mock.Anything, "2024-03-05").Return("task-1", nil)

	rec := serve(e, http.MethodPost, "/api/logs/generate?date=2024-03-05", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"taskId":"task-1"}`, rec.Body.String())
}

func TestLogHandler_GetTaskStatus(t *testing.T) {
	e, logUC := createTestLogHandler(t)

	logUC.EXPECT().GetTaskStatus(mock.Anything, "task-1").
		Return(&entity.LogTask{ID: "task-1", Status: entity.LogTaskInProgress, Date: "2024-03-05"}, nil)
	logUC.EXPECT().GetTaskStatus(mock.Anything, "nope").Return(nil, domainerrors.ErrLogTaskNotFound)

	rec := serve(e, http.MethodGet, "/api/logs/status/task-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"IN_PROGRESS"`)

	rec = serve(e, http.MethodGet, "/api/logs/status/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogHandler_DownloadLogFile(t *testing.T) {
	e, logUC := createTestLogHandler(t)

	logUC.EXPECT().OpenLogFile(mock.Anything, "task-1").
		Return(io.NopCloser(strings.NewReader("line one\nline two\n")), "log-2024-03-05-1.log", nil)

	rec := serve(e, http.MethodGet, "/api/logs/download/task-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="log-2024-03-05-1.log"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "line one\nline two\n", rec.Body.String())
}

func TestLogHandler_DownloadLogFile_NotReady(t *testing.T) {
	e, logUC := createTestLogHandler(t)

	logUC.EXPECT().OpenLogFile(mock.Anything, "task-1").Return(nil, "", domainerrors.ErrLogFileNotReady)

	rec := serve(e, http.MethodGet, "/api/logs/download/task-1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LOG_FILE_NOT_READY", decodeError(t, rec).Code)
}

func TestLogHandler_GetLogsByDate(t *testing.T) {
	e, logUC := createTestLogHandler(t)

	logUC.EXPECT().GetLogsByDate(mock.Anything, "2024-03-05").Return("a\nb", nil)
	logUC.EXPECT().GetLogsByDate(mock.Anything, "bad").Return("", domainerrors.ErrInvalidDate)

	rec := serve(e, http.MethodGet, "/api/logs/by-date?date=2024-03-05", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "a\nb", rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/logs/by-date?date=bad", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
