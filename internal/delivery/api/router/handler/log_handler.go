package handler

import (
	"log/slog"
	"net/http"

	"store/internal/delivery/api/response"
	deliverycontext "store/internal/delivery/context"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// LogHandler serves log extraction tasks and their results
type LogHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// GenerateLogFile schedules an extraction for the date query parameter and returns its task ID
func (h *LogHandler) GenerateLogFile(c echo.Context) error {
	taskID, err := h.logUC.GenerateLogFile(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"taskId": taskID})
}

// GetTaskStatus handles polling an extraction task
func (h *LogHandler) GetTaskStatus(c echo.Context) error {
	task, err := h.logUC.GetTaskStatus(c.Request().Context(), c.Param("taskId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// DownloadLogFile streams a completed extract as an attachment
func (h *LogHandler) DownloadLogFile(c echo.Context) error {
	ctx := c.Request().Context()

	reader, name, err := h.logUC.OpenLogFile(ctx, c.Param("taskId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close log file",
				slog.String("file", name),
				slog.Any("error", closeErr),
			)
		}
	}()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)

	return c.Stream(http.StatusOK, echo.MIMETextPlainCharsetUTF8, reader)
}

// GetLogsByDate returns the matching log lines as plain text
func (h *LogHandler) GetLogsByDate(c echo.Context) error {
	logs, err := h.logUC.GetLogsByDate(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.String(http.StatusOK, logs)
}
