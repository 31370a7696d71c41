package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	memoSync "memos-graph-sync/internal/sync"
	pkgLog "memos-graph-sync/pkg/log"
)

// Interval is the configured background sync cadence.
type Interval string

const (
	IntervalMinutely   Interval = "minutely"
	IntervalHalfHourly Interval = "half_hourly"
	IntervalHourly     Interval = "hourly"
	IntervalBiHourly   Interval = "bi_hourly"
	IntervalNone       Interval = "none"
)

// Spec returns the cron spec for i. Unknown values fall back to hourly;
// IntervalNone reports false.
func (i Interval) Spec() (string, bool) {
	switch i {
	case IntervalNone:
		return "", false
	case IntervalMinutely:
		return "@every 1m", true
	case IntervalHalfHourly:
		return "@every 30m", true
	case IntervalBiHourly:
		return "@every 2h", true
	default:
		return "@every 1h", true
	}
}

// Scheduler triggers sync runs on a fixed cadence.
type Scheduler struct {
	l        pkgLog.Logger
	uc       memoSync.UseCase
	interval Interval
	timeout  time.Duration
	cron     *cron.Cron
}

// New creates a Scheduler. timeout bounds each run; zero means no limit.
func New(l pkgLog.Logger, uc memoSync.UseCase, interval Interval, timeout time.Duration) *Scheduler {
	return &Scheduler{
		l:        l,
		uc:       uc,
		interval: interval,
		timeout:  timeout,
		cron:     cron.New(),
	}
}

// Start registers the sync job and starts the cron loop. Runs stop once ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	spec, ok := s.interval.Spec()
	if !ok {
		s.l.Infof(ctx, "scheduler: background sync disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(spec, func() { s.runOnce(ctx) }); err != nil {
		return err
	}
	s.cron.Start()

	s.l.Infof(ctx, "scheduler: background sync every %s", spec[len("@every "):])
	return nil
}

// Stop stops the cron loop and waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	output, err := s.uc.Run(ctx, memoSync.RunInput{Trigger: "schedule"})
	switch {
	case errors.Is(err, memoSync.ErrRunInProgress):
		s.l.Debugf(ctx, "scheduler: previous run still in progress, skipping")
	case err != nil:
		s.l.Errorf(ctx, "scheduler: sync failed: %v", err)
	default:
		s.l.Infof(ctx, "scheduler: sync %s imported %d memos", output.TraceID, output.Imported)
	}
}
