package scan

import (
	"context"
	"time"
)

// Race runs a single probe against a timer of ceiling. Whichever settles first
// decides the delta, so the returned Delta always lies within [0, ceiling].
func Race(ctx context.Context, prober Prober, task ProbeTask, ceiling time.Duration) ProbeResult {

	probeCtx, cancel := context.WithTimeout(ctx, ceiling)
	defer cancel()

	settled := make(chan ProbeResult, 1)
	go func() {
		settled <- prober.Probe(probeCtx, task.Host, task.Port)
	}()

	timer := time.NewTimer(ceiling)
	defer timer.Stop()

	result := ProbeResult{
		Host: task.Host,
		Port: task.Port,
		task: task,
	}

	select {
	case r := <-settled:
		result.Delta = clamp(r.Delta, ceiling)
		result.Status = r.Status
	case <-timer.C:
		result.Delta = ceiling
		result.Status = StatusTimeout
	case <-ctx.Done():
		result.Delta = ceiling
	}

	return result
}

func clamp(delta time.Duration, ceiling time.Duration) time.Duration {
	if delta < 0 {
		return 0
	}
	if delta > ceiling {
		return ceiling
	}
	return delta
}
