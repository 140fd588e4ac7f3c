package scan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingSweepMarksSlowHostsDown(t *testing.T) {
	prober := newFixedProber(0).
		set("h1", 80, 1*time.Millisecond).
		set("h2", 80, 1*time.Millisecond).
		set("h3", 80, 20*time.Millisecond)

	report, err := newTestNetMap(prober).PingSweep(
		context.Background(),
		[]string{"h1", "h2", "h3"},
		WithSweepPort(80),
		WithLivenessTimeout(20*time.Millisecond),
	)
	require.NoError(t, err)

	live := 0
	for _, host := range report.Hosts {
		if host.Live {
			live++
		}
	}
	assert.Equal(t, 2, live)
	assert.False(t, report.Hosts[2].Live)
	assert.Equal(t, 20*time.Millisecond, report.Hosts[2].Delta)
}

func TestPingSweepUsesNetMapTimeout(t *testing.T) {
	m, err := New(Config{Timeout: 15 * time.Millisecond, Prober: stuckProber{}})
	require.NoError(t, err)

	report, err := m.PingSweep(context.Background(), []string{"10.0.0.1"})
	require.NoError(t, err)

	require.Len(t, report.Hosts, 1)
	assert.False(t, report.Hosts[0].Live)
	assert.LessOrEqual(t, report.Hosts[0].Delta, 15*time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, report.Meta.Timeout)
}

func TestPingSweepMetadata(t *testing.T) {
	hosts := []string{"192.168.1.1", "192.168.1.2"}
	prober := newFixedProber(time.Millisecond)

	report, err := newTestNetMap(prober).PingSweep(context.Background(), hosts)
	require.NoError(t, err)

	assert.Equal(t, hosts, report.Meta.Hosts)
	assert.Equal(t, DefaultSweepParallel, report.Meta.MaxConnections)
	assert.Equal(t, 0, report.Meta.ControlPort)
	require.Len(t, report.Meta.Ports, 1)
	assert.GreaterOrEqual(t, report.Meta.Ports[0], 10000)
	assert.Less(t, report.Meta.Ports[0], 20000)

	// a sweep never sends a control probe
	assert.Equal(t, len(hosts), prober.count())
	for i, host := range report.Hosts {
		assert.Equal(t, hosts[i], host.Host)
		assert.True(t, host.Live)
	}
}

func TestPingSweepRandomPortRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		port := randomHighPort()
		assert.GreaterOrEqual(t, port, 10000)
		assert.Less(t, port, 20000)
	}
}

func TestPingSweepEmptyHosts(t *testing.T) {
	report, err := newTestNetMap(newFixedProber(time.Millisecond)).PingSweep(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, report.Hosts)
	assert.Equal(t, time.Duration(0), report.Meta.ScanDuration)
}

func TestPingSweepZeroConnectionsIsConfigError(t *testing.T) {
	prober := newFixedProber(time.Millisecond)

	_, err := newTestNetMap(prober).PingSweep(context.Background(), []string{"h"}, WithSweepMaxConnections(0))

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, 0, prober.count())
}

func TestPingSweepDeviceLookupSkipsUnknownHosts(t *testing.T) {
	report, err := newTestNetMap(newFixedProber(time.Millisecond)).PingSweep(
		context.Background(),
		[]string{"not-an-ip"},
		WithDeviceLookup(),
	)
	require.NoError(t, err)

	assert.True(t, report.Hosts[0].Live)
	assert.Empty(t, report.Hosts[0].MAC)
	assert.Empty(t, report.Hosts[0].Manufacturer)
}
