// Package schedule drives the bot's recurring maintenance work, such
// as transcript retention.
package schedule

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// Job is one unit of recurring maintenance. Runs are serialized per
// job; a tick that fires while the previous run is still going is
// skipped, not queued.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	base context.Context
}

func New() *Scheduler {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return &Scheduler{cron: cron.New(cron.WithParser(parser))}
}

// Add registers job on a five-field cron spec.
func (s *Scheduler) Add(spec string, job Job) error {
	var busy atomic.Bool
	if _, err := s.cron.AddFunc(spec, func() { s.fire(job, &busy) }); err != nil {
		return fmt.Errorf("add job %s: %w", job.Name(), err)
	}
	logutil.GetLogger(context.Background()).Info("maintenance job registered",
		zap.String("job", job.Name()), zap.String("cron", spec))
	return nil
}

func (s *Scheduler) fire(job Job, busy *atomic.Bool) {
	ctx := s.base
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logutil.GetLogger(ctx).With(zap.String("job", job.Name()))
	if !busy.CompareAndSwap(false, true) {
		logger.Warn("previous run still in progress, skipping this tick")
		return
	}
	defer busy.Store(false)
	start := time.Now()
	if err := job.Run(ctx); err != nil {
		logger.Error("maintenance job failed", zap.Duration("cost", time.Since(start)), zap.Error(err))
		return
	}
	logger.Info("maintenance job done", zap.Duration("cost", time.Since(start)))
}

// Start begins firing ticks. ctx becomes the base context handed to
// every job run.
func (s *Scheduler) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.base = ctx
	s.cron.Start()
}

// Stop halts scheduling and waits for any in-flight run to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
