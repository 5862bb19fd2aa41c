package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"store/config"
	deliverycontext "store/internal/delivery/context"
	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"
)

const logDateLayout = "2006-01-02"

type logService struct {
	source service.LogSource
	store  service.LogStore
	logger *slog.Logger

	mu    sync.RWMutex
	tasks map[string]*entity.LogTask

	workers *semaphore.Weighted
	wg      sync.WaitGroup
	now     func() time.Time
}

// LogServiceParams holds dependencies for LogService, injected by Fx.
type LogServiceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Source service.LogSource
	Store  service.LogStore
	Logger *slog.Logger
}

// NewLogService creates the log service and waits for running extractions on shutdown.
func NewLogService(params LogServiceParams) usecase.LogUsecase {
	svc := newLogService(params.Source, params.Store, params.Config.Logs.Workers, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: svc.wait,
	})

	return svc
}

func newLogService(source service.LogSource, store service.LogStore, workers int, logger *slog.Logger) *logService {
	if workers <= 0 {
		workers = 1
	}

	return &logService{
		source:  source,
		store:   store,
		logger:  logger,
		tasks:   make(map[string]*entity.LogTask),
		workers: semaphore.NewWeighted(int64(workers)),
		now:     time.Now,
	}
}

func (s *logService) GenerateLogFile(ctx context.Context, date string) (string, error) {
	if err := validateLogDate(date); err != nil {
		return "", err
	}

	task := &entity.LogTask{
		ID:        uuid.New().String(),
		Status:    entity.LogTaskInProgress,
		Date:      date,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.mu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("task_id", task.ID))
	logger.Info("Log extraction scheduled", slog.String("date", date))

	// The task outlives the request that created it.
	s.wg.Add(1)
	go s.run(context.WithoutCancel(ctx), task.ID, date, logger)

	return task.ID, nil
}

func (s *logService) run(ctx context.Context, taskID, date string, logger *slog.Logger) {
	defer s.wg.Done()

	if err := s.workers.Acquire(ctx, 1); err != nil {
		s.fail(taskID, err, logger)

		return
	}
	defer s.workers.Release(1)

	lines, err := s.source.Lines(ctx, date)
	if err != nil {
		s.fail(taskID, err, logger)

		return
	}

	name := fmt.Sprintf("log-%s-%d.log", date, s.now().UnixMilli())
	if err := s.store.Save(ctx, name, lines); err != nil {
		s.fail(taskID, err, logger)

		return
	}

	s.finish(taskID, func(task *entity.LogTask) {
		task.Status = entity.LogTaskCompleted
		task.FilePath = name
	})
	logger.Info("Log extraction completed", slog.String("file", name), slog.Int("lines", len(lines)))
}

func (s *logService) fail(taskID string, err error, logger *slog.Logger) {
	s.finish(taskID, func(task *entity.LogTask) {
		task.Status = entity.LogTaskFailed
		task.ErrorMessage = err.Error()
	})
	logger.Error("Log extraction failed", slog.Any("error", err))
}

// finish applies the terminal transition once. Later calls are ignored.
func (s *logService) finish(taskID string, apply func(task *entity.LogTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || task.IsTerminal() {
		return
	}
	apply(task)
}

func (s *logService) GetTaskStatus(_ context.Context, taskID string) (*entity.LogTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, domainerrors.ErrLogTaskNotFound
	}
	snapshot := *task

	return &snapshot, nil
}

func (s *logService) OpenLogFile(ctx context.Context, taskID string) (io.ReadCloser, string, error) {
	task, err := s.GetTaskStatus(ctx, taskID)
	if err != nil {
		return nil, "", err
	}

	if task.Status != entity.LogTaskCompleted {
		return nil, "", domainerrors.ErrLogFileNotReady
	}

	reader, err := s.store.Open(ctx, task.FilePath)
	if err != nil {
		if errors.Is(err, service.ErrLogObjectNotFound) {
			return nil, "", domainerrors.ErrLogFileNotReady.WithDetails("generated file is missing")
		}

		return nil, "", errors.Wrap(err, "failed to open generated log file")
	}

	return reader, task.FilePath, nil
}

func (s *logService) GetLogsByDate(ctx context.Context, date string) (string, error) {
	if err := validateLogDate(date); err != nil {
		return "", err
	}

	lines, err := s.source.Lines(ctx, date)
	if err != nil {
		if errors.Is(err, service.ErrLogSourceNotFound) {
			return "", domainerrors.ErrLogSourceNotFound
		}

		return "", domainerrors.ErrLogReadFailed.WithDetails(err.Error())
	}

	if len(lines) == 0 {
		return "", domainerrors.ErrNoLogsForDate
	}

	return strings.Join(lines, "\n"), nil
}

// wait blocks until every running extraction finishes or ctx is done.
func (s *logService) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "log extraction still running")
	}
}

func validateLogDate(date string) error {
	if _, err := time.Parse(logDateLayout, date); err != nil {
		return domainerrors.ErrInvalidDate.WithDetails(date)
	}

	return nil
}
