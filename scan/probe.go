package scan

import (
	"context"
	"time"
)

type ProbeStatus uint8

const (
	StatusUnknown ProbeStatus = iota
	StatusAccepted
	StatusRefused
	StatusTimeout
)

func (s ProbeStatus) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusRefused:
		return "refused"
	case StatusTimeout:
		return "timeout"
	}
	return "unknown"
}

func (s ProbeStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ProbeTask is a single (host, port) pair waiting to be probed. The indexes
// locate the result in the report regardless of when it arrives.
type ProbeTask struct {
	Host    string
	Port    int
	control bool
	hostIdx int
	portIdx int
}

// ProbeResult is the settled outcome of one probe. Delta is the only signal
// classification relies on; Status is whatever the primitive could tell.
type ProbeResult struct {
	Host   string        `json:"host" yaml:"host"`
	Port   int           `json:"port" yaml:"port"`
	Delta  time.Duration `json:"delta" yaml:"delta"`
	Status ProbeStatus   `json:"status" yaml:"status"`

	task ProbeTask
}

// Prober attempts one contact with host:port. Implementations must settle once
// ctx is done and report their own elapsed time as Delta.
type Prober interface {
	Probe(ctx context.Context, host string, port int) ProbeResult
}

type ProberFunc func(ctx context.Context, host string, port int) ProbeResult

func (f ProberFunc) Probe(ctx context.Context, host string, port int) ProbeResult {
	return f(ctx, host, port)
}
