package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/siteuptime/internal/domain"
)

// DefaultTimeout bounds a whole probe request.
const DefaultTimeout = 5 * time.Second

// drain at most this much of a body so keep-alive connections can be reused
const maxDrain = 64 << 10

type HTTPProber struct {
	Client *http.Client
	Logger *zap.Logger

	timeout time.Duration
}

// Option configures an HTTPProber.
type Option func(*HTTPProber) error

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProber) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %v", d)
		}
		p.timeout = d
		return nil
	}
}

// WithClient replaces the default client. Its Timeout is left untouched.
func WithClient(c *http.Client) Option {
	return func(p *HTTPProber) error {
		if c == nil {
			return fmt.Errorf("client must not be nil")
		}
		p.Client = c
		return nil
	}
}

// WithLogger attaches a diagnostic logger that records why a probe was DOWN.
func WithLogger(l *zap.Logger) Option {
	return func(p *HTTPProber) error {
		p.Logger = l
		return nil
	}
}

func NewHTTPProber(opts ...Option) (*HTTPProber, error) {
	p := &HTTPProber{timeout: DefaultTimeout, Logger: zap.NewNop()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("probe: %w", err)
		}
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.Client == nil {
		p.Client = &http.Client{Timeout: p.timeout}
	}
	return p, nil
}

// Timeout reports the configured request timeout.
func (h *HTTPProber) Timeout() time.Duration {
	return h.timeout
}

// Probe issues exactly one GET. Any response, whatever its status code, is UP.
func (h *HTTPProber) Probe(ctx context.Context, target string) domain.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		h.Logger.Debug("probe_bad_request", zap.String("url", target), zap.Error(err))
		return domain.Down()
	}

	start := time.Now()
	resp, err := h.Client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		h.Logger.Debug("probe_down", zap.String("url", target), zap.Error(err))
		return domain.Down()
	}
	_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)
	resp.Body.Close()

	h.Logger.Debug("probe_up",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
	)
	return domain.Up(resp.StatusCode, elapsed)
}
