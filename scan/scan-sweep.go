package scan

import (
	"context"
	"math/rand"
)

const (
	sweepPortMin   = 10000
	sweepPortRange = 10000
)

// PingSweep probes a single port on each host and marks the host live when
// the probe settled before the liveness timeout. No control baseline is used.
func (m *NetMap) PingSweep(ctx context.Context, hosts []string, opts ...SweepOption) (*SweepReport, error) {

	options := sweepOptions{
		maxConnections: DefaultSweepParallel,
		timeout:        m.timeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.port == 0 {
		options.port = randomHighPort()
	}
	if err := validatePort("port", options.port); err != nil {
		return nil, err
	}

	scanned, err := m.run(ctx, scanPlan{
		hosts:          hosts,
		ports:          []int{options.port},
		maxConnections: options.maxConnections,
		ceiling:        options.timeout,
	})
	if err != nil {
		return nil, err
	}

	report := &SweepReport{
		Meta:  scanned.Meta,
		Hosts: make([]SweepHostResult, 0, len(scanned.Hosts)),
	}

	for _, host := range scanned.Hosts {
		result := SweepHostResult{
			Host:  host.Host,
			Delta: host.Ports[0].Delta,
		}
		result.Live = result.Delta < options.timeout
		if result.Live && options.lookupDevices {
			device := LookupDevice(host.Host)
			result.MAC = device.MAC
			result.Manufacturer = device.Manufacturer
			result.Name = device.Name
		}
		report.Hosts = append(report.Hosts, result)
	}

	return report, nil
}

func randomHighPort() int {
	return rand.Intn(sweepPortRange) + sweepPortMin
}
