package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hamed0406/siteuptime/internal/config"
	"github.com/hamed0406/siteuptime/internal/logging"
	"github.com/hamed0406/siteuptime/internal/probe"
	"github.com/hamed0406/siteuptime/internal/repo"
	"github.com/hamed0406/siteuptime/internal/repo/file"
	"github.com/hamed0406/siteuptime/internal/repo/memory"
	"github.com/hamed0406/siteuptime/internal/report"
	"github.com/hamed0406/siteuptime/internal/scheduler"
	"github.com/hamed0406/siteuptime/internal/target"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	logger, err := logging.NewLogger(logging.Options{Dir: cfg.LogDir, Level: cfg.LogLevel, Stderr: stderr})
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return exitConfig
	}
	defer func() { _ = logger.Sync() }()

	raw := cfg.URL
	if raw == "" {
		if raw, err = target.Prompt(stdin, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return exitConfig
		}
	}
	url, err := target.Normalize(raw)
	if err != nil {
		fmt.Fprintln(stderr, "Invalid URL:", err)
		return exitConfig
	}

	prober, err := probe.NewHTTPProber(probe.WithTimeout(cfg.Timeout), probe.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	var sink repo.LineAppender = file.New(cfg.LogFile)
	if cfg.DryRun {
		sink = memory.New()
	}
	opts := []report.Option{report.WithOutput(stdout), report.WithLogger(logger)}
	if cfg.NoColor {
		opts = append(opts, report.WithColor(false))
	}
	reporter := report.New(sink, opts...)

	runner := scheduler.NewRunner(logger, prober, reporter, url, cfg.IntervalDuration(), cfg.Count)
	logger.Info("run_start",
		zap.String("url", url),
		zap.Int("interval_s", cfg.Interval),
		zap.String("log_file", cfg.LogFile),
		zap.Bool("dry_run", cfg.DryRun),
	)
	if err := runner.Run(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailed
	}
	return exitOK
}
