package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"orders/pkg/logger"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL - интервал между запусками.
	TTL() time.Duration
	Do(context.Context) error
	// Info - имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Worker struct {
	log   workerLogger
	tasks []Task
	group *errgroup.Group
}

// New один раз синхронно выполняет каждую задачу и только потом запускает
// периодические циклы. Ошибка или паника первого запуска возвращается
// вызывающему, циклы при этом не стартуют. Циклы живут до отмены ctx.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing background task", logger.NewField("task", task.Info()))
			return runSafely(initCtx, log, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	worker := &Worker{
		log:   log,
		tasks: tasks,
		group: &errgroup.Group{},
	}

	for _, task := range tasks {
		worker.group.Go(func() error {
			worker.loop(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокируется, пока все циклы не остановятся после отмены контекста.
func (w *Worker) Wait() {
	_ = w.group.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl),
		)
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("background task stopped", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := runSafely(ctx, w.log, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

func runSafely(ctx context.Context, log workerLogger, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %s panic: %v", task.Info(), r)
		}
	}()

	return task.Do(ctx)
}
