package probe

import (
	"context"

	"github.com/hamed0406/siteuptime/internal/domain"
)

// Prober performs a single reachability probe for an absolute URL.
//
// Implementations never return an error: transport failures are a normal
// outcome and are reported as domain.Down().
type Prober interface {
	Probe(ctx context.Context, url string) domain.Outcome
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, url string) domain.Outcome

func (f ProberFunc) Probe(ctx context.Context, url string) domain.Outcome {
	return f(ctx, url)
}
