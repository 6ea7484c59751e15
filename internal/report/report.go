package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/hamed0406/siteuptime/internal/domain"
	"github.com/hamed0406/siteuptime/internal/repo"
)

// Reporter renders one outcome to the console and appends it to the uptime log.
type Reporter struct {
	Out     io.Writer
	Log     repo.LineAppender
	Logger  *zap.Logger
	Palette Palette
	Now     func() time.Time
}

type Option func(*Reporter)

func WithOutput(w io.Writer) Option { return func(r *Reporter) { r.Out = w } }

func WithLogger(l *zap.Logger) Option { return func(r *Reporter) { r.Logger = l } }

// WithColor forces console colors on or off. Without it colors follow
// terminal detection and NO_COLOR.
func WithColor(enabled bool) Option { return func(r *Reporter) { r.Palette = NewPalette(enabled) } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(r *Reporter) { r.Now = now } }

func New(log repo.LineAppender, opts ...Option) *Reporter {
	r := &Reporter{
		Out:     os.Stdout,
		Log:     log,
		Logger:  zap.NewNop(),
		Palette: NewPalette(!color.NoColor),
		Now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report prints the console line, then appends the plain line. Both share one
// timestamp. A failed append is returned and must be treated as fatal.
func (r *Reporter) Report(ctx context.Context, url string, o domain.Outcome) error {
	ts := r.Now()

	if _, err := fmt.Fprintln(r.Out, FormatConsoleLine(ts, url, o, r.Palette)); err != nil {
		r.Logger.Warn("console_write_error", zap.Error(err))
	}

	if err := r.Log.Append(ctx, FormatLogLine(ts, url, o)); err != nil {
		r.Logger.Error("report_failed", zap.String("url", url), zap.Error(err))
		return fmt.Errorf("append log line: %w", err)
	}

	code, _ := o.Code()
	lat, _ := o.Latency()
	r.Logger.Info("reported",
		zap.String("url", url),
		zap.Stringer("status", o.Status()),
		zap.Int("code", code),
		zap.Float64("latency_s", lat),
	)
	return nil
}

// Banner prints the "Monitoring ..." header shown before a polling loop.
func (r *Reporter) Banner(url string, interval time.Duration) {
	msg := fmt.Sprintf("Monitoring %s every %d seconds...", url, int(interval/time.Second))
	fmt.Fprintf(r.Out, "\n%s\n\n", r.Palette.Banner.Sprint(msg))
}
