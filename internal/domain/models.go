package domain

// Status is the binary reachability classification of a probe.
type Status int

const (
	StatusDown Status = iota
	StatusUp
)

func (s Status) String() string {
	if s == StatusUp {
		return "UP"
	}
	return "DOWN"
}
