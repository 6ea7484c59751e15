package domain

import (
	"math"
	"time"
)

// Outcome is the result of a single probe. It is either Up, carrying an HTTP
// status code and a latency, or Down, carrying nothing. The zero value is Down.
type Outcome struct {
	up      bool
	code    int
	latency float64 // seconds, rounded to 2 decimals
}

// Up builds a reachable outcome. Negative durations are clamped to zero.
func Up(code int, elapsed time.Duration) Outcome {
	if elapsed < 0 {
		elapsed = 0
	}
	return Outcome{up: true, code: code, latency: roundSeconds(elapsed)}
}

// Down builds an unreachable outcome.
func Down() Outcome {
	return Outcome{}
}

func (o Outcome) Status() Status {
	if o.up {
		return StatusUp
	}
	return StatusDown
}

// Code returns the HTTP status code; ok is false for a Down outcome.
func (o Outcome) Code() (code int, ok bool) {
	return o.code, o.up
}

// Latency returns the response time in seconds; ok is false for a Down outcome.
func (o Outcome) Latency() (seconds float64, ok bool) {
	return o.latency, o.up
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
