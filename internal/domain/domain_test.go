package domain

import (
	"testing"
	"time"
)

func TestOutcome_Up(t *testing.T) {
	o := Up(200, 340*time.Millisecond)
	if o.Status() != StatusUp {
		t.Fatalf("want UP, got %v", o.Status())
	}
	code, ok := o.Code()
	if !ok || code != 200 {
		t.Fatalf("want code 200 present, got %d ok=%v", code, ok)
	}
	lat, ok := o.Latency()
	if !ok || lat != 0.34 {
		t.Fatalf("want latency 0.34 present, got %v ok=%v", lat, ok)
	}
}

func TestOutcome_DownHasNoMetrics(t *testing.T) {
	for _, o := range []Outcome{Down(), {}} {
		if o.Status() != StatusDown {
			t.Fatalf("want DOWN, got %v", o.Status())
		}
		if _, ok := o.Code(); ok {
			t.Fatalf("down outcome must not carry a code")
		}
		if _, ok := o.Latency(); ok {
			t.Fatalf("down outcome must not carry a latency")
		}
	}
}

func TestOutcome_LatencyRounding(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want float64
	}{
		{0, 0},
		{4 * time.Millisecond, 0},
		{5 * time.Millisecond, 0.01},
		{1234 * time.Millisecond, 1.23},
		{1236 * time.Millisecond, 1.24},
		{-time.Second, 0},
	}
	for _, c := range cases {
		got, _ := Up(200, c.in).Latency()
		if got != c.want {
			t.Fatalf("Up(200, %v) latency=%v want %v", c.in, got, c.want)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if StatusUp.String() != "UP" || StatusDown.String() != "DOWN" {
		t.Fatalf("unexpected strings: %q %q", StatusUp, StatusDown)
	}
}
