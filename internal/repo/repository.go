package repo

import "context"

// LineAppender persists uptime log lines. Implementations add the trailing
// newline themselves; callers pass the bare line.
type LineAppender interface {
	Append(ctx context.Context, line string) error
}
