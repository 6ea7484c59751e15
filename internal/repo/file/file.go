// Package file persists uptime log lines to a plain append-only text file.
//
// The file is opened, written and closed on every Append. No handle is held
// between calls, so the file may be moved or truncated by other tools while
// the monitor runs and readers such as `tail -f` only ever see whole lines.
package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
)

// DefaultPath is relative to the working directory.
const DefaultPath = "uptime_log.txt"

const filePerm = 0o644

type Appender struct {
	path string
}

func New(path string) *Appender {
	if path == "" {
		path = DefaultPath
	}
	return &Appender{path: path}
}

func (a *Appender) Path() string {
	return a.path
}

// Append writes line followed by a newline in a single write call.
func (a *Appender) Append(_ context.Context, line string) (err error) {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", a.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", a.path, cerr))
		}
	}()

	if _, err := f.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("write %s: %w", a.path, err)
	}
	return nil
}

// Lines reads the whole log back. A missing file yields no lines.
func (a *Appender) Lines() ([]string, error) {
	f, err := os.Open(a.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", a.path, err)
	}
	return lines, nil
}
