package scan

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// fixedProber settles immediately with a preset delta per host:port, falling
// back to a per-port or default delta.
type fixedProber struct {
	mu       sync.Mutex
	deltas   map[string]time.Duration
	fallback time.Duration
	calls    []ProbeTask
}

func newFixedProber(fallback time.Duration) *fixedProber {
	return &fixedProber{
		deltas:   map[string]time.Duration{},
		fallback: fallback,
	}
}

func (p *fixedProber) set(host string, port int, delta time.Duration) *fixedProber {
	p.deltas[fmt.Sprintf("%s:%d", host, port)] = delta
	return p
}

func (p *fixedProber) Probe(_ context.Context, host string, port int) ProbeResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, ProbeTask{Host: host, Port: port})

	delta, ok := p.deltas[fmt.Sprintf("%s:%d", host, port)]
	if !ok {
		delta = p.fallback
	}
	return ProbeResult{Host: host, Port: port, Delta: delta}
}

func (p *fixedProber) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// countingProber sleeps for a while and records the peak number of probes in
// flight at once.
type countingProber struct {
	sleep    time.Duration
	inflight int64
	peak     int64
	total    int64
}

func (p *countingProber) Probe(ctx context.Context, host string, port int) ProbeResult {
	n := atomic.AddInt64(&p.inflight, 1)
	atomic.AddInt64(&p.total, 1)
	for {
		peak := atomic.LoadInt64(&p.peak)
		if n <= peak || atomic.CompareAndSwapInt64(&p.peak, peak, n) {
			break
		}
	}
	defer atomic.AddInt64(&p.inflight, -1)

	start := time.Now()
	select {
	case <-time.After(p.sleep):
	case <-ctx.Done():
	}
	return ProbeResult{Host: host, Port: port, Delta: time.Since(start)}
}

// stuckProber never settles until its context is done.
type stuckProber struct{}

func (stuckProber) Probe(ctx context.Context, host string, port int) ProbeResult {
	<-ctx.Done()
	return ProbeResult{Host: host, Port: port, Delta: time.Hour}
}

func newTestNetMap(prober Prober) *NetMap {
	m, err := New(Config{
		Timeout:     time.Second,
		PortTimeout: time.Second,
		Prober:      prober,
	})
	if err != nil {
		panic(err)
	}
	return m
}
