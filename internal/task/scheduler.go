package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs tasks on a cron schedule. A tick that fires while the
// previous pass is still executing is skipped.
type Scheduler struct {
	cron       *cron.Cron
	job        cron.Job
	schedule   string
	tasks      []Task
	logger     *slog.Logger
	ctx        context.Context
	cancelFunc context.CancelFunc
	errHandler func(task Task, err error)
}

// NewScheduler creates a Scheduler for the given cron expression, which
// includes a leading seconds field (e.g. "0 */15 * * * *").
func NewScheduler(schedule string, logger *slog.Logger, tasks ...Task) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "scheduler")

	ctx, cancel := context.WithCancel(context.Background())
	cl := cronLogger{logger: logger}

	s := &Scheduler{
		cron:       cron.New(cron.WithSeconds(), cron.WithLogger(cl)),
		schedule:   schedule,
		tasks:      tasks,
		logger:     logger,
		ctx:        ctx,
		cancelFunc: cancel,
		errHandler: func(task Task, err error) {
			logger.Error("task execution failed",
				"task_type", task.Type(),
				"error", err)
		},
	}
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).
		Then(cron.FuncJob(func() { s.RunOnce(s.ctx) }))
	return s
}

// SetErrorHandler allows setting a custom error handler function
func (s *Scheduler) SetErrorHandler(handler func(task Task, err error)) {
	s.errHandler = handler
}

// Start registers the schedule and begins firing. It returns an error if the
// schedule does not parse.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddJob(s.schedule, s.job); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "schedule", s.schedule, "tasks", len(s.tasks))
	return nil
}

// Stop halts the schedule and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	s.cancelFunc()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunOnce executes every task once, in registration order. A failing task
// is reported to the error handler and does not stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, t := range s.tasks {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		if err := t.Execute(ctx); err != nil {
			s.errHandler(t, err)
			continue
		}
		s.logger.Debug("task completed",
			"task_type", t.Type(),
			"duration", time.Since(start))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
