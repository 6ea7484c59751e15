package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hamed0406/siteuptime/internal/domain"
)

// TimestampLayout is YYYY-MM-DD HH:MM:SS in local time.
const TimestampLayout = "2006-01-02 15:04:05"

// DownMessage replaces the details of a DOWN console line.
const DownMessage = "Website is not reachable"

// FormatLogLine renders the plain line written to the uptime log.
// DOWN lines carry no code or latency.
func FormatLogLine(ts time.Time, url string, o domain.Outcome) string {
	line := fmt.Sprintf("[%s] %s - %s", ts.Format(TimestampLayout), url, o.Status())
	if o.Status() == domain.StatusUp {
		code, _ := o.Code()
		lat, _ := o.Latency()
		line += fmt.Sprintf(" | Code: %d | Response Time: %ss", code, FormatSeconds(lat))
	}
	return line
}

// FormatConsoleLine renders the human-facing line. Colors come from p; a
// palette with colors disabled produces plain text.
func FormatConsoleLine(ts time.Time, url string, o domain.Outcome, p Palette) string {
	var details string
	status := o.Status().String()
	if o.Status() == domain.StatusUp {
		code, _ := o.Code()
		lat, _ := o.Latency()
		status = p.Up.Sprint(status)
		details = fmt.Sprintf("%s %d | %s %ss",
			p.Code.Sprint("Code:"), code,
			p.Latency.Sprint("Response Time:"), FormatSeconds(lat),
		)
	} else {
		status = p.Down.Sprint(status)
		details = p.Down.Sprint(DownMessage)
	}
	return fmt.Sprintf("[%s] %s - %s | %s", ts.Format(TimestampLayout), url, status, details)
}

// FormatSeconds prints the shortest decimal form that keeps at least one
// fractional digit: 0.34, 0.3, 1.0, 12.05.
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Palette holds the console colors.
type Palette struct {
	Up      *color.Color
	Down    *color.Color
	Code    *color.Color
	Latency *color.Color
	Banner  *color.Color
}

// NewPalette builds the console palette. enabled=false forces plain output
// regardless of terminal detection.
func NewPalette(enabled bool) Palette {
	p := Palette{
		Up:      color.New(color.FgGreen),
		Down:    color.New(color.FgRed),
		Code:    color.New(color.FgYellow),
		Latency: color.New(color.FgCyan),
		Banner:  color.New(color.FgMagenta),
	}
	for _, c := range []*color.Color{p.Up, p.Down, p.Code, p.Latency, p.Banner} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
