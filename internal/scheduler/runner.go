package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/siteuptime/internal/domain"
	"github.com/hamed0406/siteuptime/internal/probe"
)

// Reporter renders and persists one outcome.
type Reporter interface {
	Report(ctx context.Context, url string, o domain.Outcome) error
	Banner(url string, interval time.Duration)
}

// Runner drives the probe/report cycle for a single URL. Cycles run strictly
// one after another; nothing runs while the runner sleeps.
type Runner struct {
	Logger   *zap.Logger
	Prober   probe.Prober
	Reporter Reporter
	URL      string
	Interval time.Duration // 0 runs exactly one cycle
	MaxRuns  int           // 0 is unbounded; ignored when Interval is 0

	sleep func(ctx context.Context, d time.Duration) error
}

func NewRunner(
	logger *zap.Logger,
	prober probe.Prober,
	reporter Reporter,
	url string,
	interval time.Duration,
	maxRuns int,
) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval < 0 {
		interval = 0
	}
	if maxRuns < 0 {
		maxRuns = 0
	}
	return &Runner{
		Logger:   logger,
		Prober:   prober,
		Reporter: reporter,
		URL:      url,
		Interval: interval,
		MaxRuns:  maxRuns,
		sleep:    sleepCtx,
	}
}

// Run executes one cycle, or loops every Interval until ctx is cancelled or
// MaxRuns cycles have completed. Cancellation is a clean stop and returns nil.
// A report error ends the run and is returned.
func (r *Runner) Run(ctx context.Context) error {
	if r.Interval == 0 {
		_, err := r.runOnce(ctx)
		return err
	}

	r.Reporter.Banner(r.URL, r.Interval)
	r.Logger.Info("monitor_start",
		zap.String("url", r.URL),
		zap.Duration("interval", r.Interval),
		zap.Int("max_runs", r.MaxRuns),
	)

	for n := 1; ; n++ {
		stopped, err := r.runOnce(ctx)
		if err != nil {
			return err
		}
		if stopped {
			break
		}
		if r.MaxRuns > 0 && n >= r.MaxRuns {
			r.Logger.Info("monitor_done", zap.Int("runs", n))
			return nil
		}
		if err := r.sleep(ctx, r.Interval); err != nil {
			break
		}
	}
	r.Logger.Info("monitor_stopped", zap.String("url", r.URL))
	return nil
}

// runOnce reports stopped=true when ctx ended during the probe; that outcome
// says nothing about the site and is not reported.
func (r *Runner) runOnce(ctx context.Context) (stopped bool, err error) {
	if ctx.Err() != nil {
		return true, nil
	}
	out := r.Prober.Probe(ctx, r.URL)
	if ctx.Err() != nil {
		return true, nil
	}
	if err := r.Reporter.Report(ctx, r.URL, out); err != nil {
		r.Logger.Error("monitor_report_error", zap.String("url", r.URL), zap.Error(err))
		return false, err
	}
	return false, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
