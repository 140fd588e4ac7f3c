package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRaceKeepsDeltaOfSettledProbe(t *testing.T) {
	prober := newFixedProber(5 * time.Millisecond)

	result := Race(context.Background(), prober, ProbeTask{Host: "10.0.0.1", Port: 80}, time.Second)

	assert.Equal(t, "10.0.0.1", result.Host)
	assert.Equal(t, 80, result.Port)
	assert.Equal(t, 5*time.Millisecond, result.Delta)
}

func TestRaceCapsStuckProbeAtCeiling(t *testing.T) {
	ceiling := 20 * time.Millisecond

	start := time.Now()
	result := Race(context.Background(), stuckProber{}, ProbeTask{Host: "10.0.0.1", Port: 80}, ceiling)
	elapsed := time.Since(start)

	assert.True(t, result.Delta <= ceiling)
	assert.True(t, elapsed < time.Second, "race took %s", elapsed)
}

func TestRaceClampsOutOfRangeDeltas(t *testing.T) {
	ceiling := 10 * time.Millisecond

	prober := newFixedProber(0).
		set("slow", 1, time.Hour).
		set("negative", 1, -time.Second)

	assert.Equal(t, ceiling, Race(context.Background(), prober, ProbeTask{Host: "slow", Port: 1}, ceiling).Delta)
	assert.Equal(t, time.Duration(0), Race(context.Background(), prober, ProbeTask{Host: "negative", Port: 1}, ceiling).Delta)
}

func TestRaceTimeoutStatus(t *testing.T) {
	prober := ProberFunc(func(ctx context.Context, host string, port int) ProbeResult {
		time.Sleep(200 * time.Millisecond)
		return ProbeResult{Host: host, Port: port, Delta: 200 * time.Millisecond, Status: StatusAccepted}
	})

	result := Race(context.Background(), prober, ProbeTask{Host: "10.0.0.1", Port: 80}, 10*time.Millisecond)

	assert.Equal(t, 10*time.Millisecond, result.Delta)
	assert.Equal(t, StatusTimeout, result.Status)
}
