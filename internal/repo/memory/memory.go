package memory

import (
	"context"
	"sync"
)

// Appender keeps log lines in memory. Used for dry runs and tests.
type Appender struct {
	mu    sync.RWMutex
	lines []string
	err   error
}

func New() *Appender {
	return &Appender{lines: make([]string, 0, 16)}
}

// FailWith makes every subsequent Append return err (nil restores normal behavior).
func (m *Appender) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Appender) Append(_ context.Context, line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, line)
	return nil
}

// Lines returns a copy of everything appended so far.
func (m *Appender) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}
