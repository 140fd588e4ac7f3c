package scan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type scanPlan struct {
	hosts          []string
	ports          []int
	control        bool
	controlPort    int
	maxConnections int
	ceiling        time.Duration
	observe        func(ProbeResult)
}

// TCPScan probes every port on every host, plus one control port per host
// that serves as the timing baseline. A port is open when it settled strictly
// faster than its host's control probe.
func (m *NetMap) TCPScan(ctx context.Context, hosts []string, ports []int, opts ...ScanOption) (*ScanReport, error) {

	options := scanOptions{
		maxConnections: DefaultMaxConnections,
		controlPort:    DefaultControlPort,
	}
	for _, opt := range opts {
		opt(&options)
	}

	ceiling := m.portTimeout
	if options.timeout != 0 {
		ceiling = options.timeout
	}
	if options.portTimeout != 0 {
		ceiling = options.portTimeout
	}

	if err := validatePort("controlPort", options.controlPort); err != nil {
		return nil, err
	}

	report, err := m.run(ctx, scanPlan{
		hosts:          hosts,
		ports:          ports,
		control:        true,
		controlPort:    options.controlPort,
		maxConnections: options.maxConnections,
		ceiling:        ceiling,
		observe:        options.portCallback,
	})
	if err != nil {
		return nil, err
	}

	for i := range report.Hosts {
		host := &report.Hosts[i]
		for j := range host.Ports {
			host.Ports[j].Open = host.Ports[j].Delta < host.Control.Delta
		}
	}

	return report, nil
}

func (m *NetMap) run(ctx context.Context, plan scanPlan) (*ScanReport, error) {

	if plan.maxConnections < 1 {
		return nil, configError("maxConnections", "must be at least 1, got %d", plan.maxConnections)
	}
	if plan.ceiling <= 0 {
		return nil, configError("timeout", "must be positive, got %s", plan.ceiling)
	}
	for _, port := range plan.ports {
		if err := validatePort("ports", port); err != nil {
			return nil, err
		}
	}

	report := &ScanReport{
		Meta: ScanMetadata{
			ID:             uuid.NewString(),
			Protocol:       m.protocol,
			Hosts:          plan.hosts,
			Ports:          plan.ports,
			MaxConnections: plan.maxConnections,
			Timeout:        plan.ceiling,
			StartTime:      time.Now(),
		},
		Hosts: []HostScanResult{},
	}
	if plan.control {
		report.Meta.ControlPort = plan.controlPort
	}

	if len(plan.hosts) == 0 || len(plan.ports) == 0 {
		report.Meta.EndTime = report.Meta.StartTime
		return report, nil
	}

	pool, err := NewPool(m.prober, plan.ceiling, plan.maxConnections)
	if err != nil {
		return nil, err
	}

	for _, host := range plan.hosts {
		report.Hosts = append(report.Hosts, HostScanResult{
			Host:  host,
			Ports: make([]PortResult, len(plan.ports)),
		})
	}

	logrus.WithFields(logrus.Fields{
		"scan":  report.Meta.ID,
		"hosts": len(plan.hosts),
		"ports": len(plan.ports),
	}).Debugf("Scanning with %d connection(s)...", plan.maxConnections)

	err = pool.Run(ctx, buildTasks(plan), func(result ProbeResult) {
		host := &report.Hosts[result.task.hostIdx]
		if result.task.control {
			host.Control = result
		} else {
			host.Ports[result.task.portIdx] = PortResult{
				Port:   result.Port,
				Delta:  result.Delta,
				Status: result.Status,
			}
		}
		if plan.observe != nil {
			plan.observe(result)
		}
	})
	if err != nil {
		return nil, err
	}

	report.Meta.EndTime = time.Now()
	report.Meta.ScanDuration = report.Meta.EndTime.Sub(report.Meta.StartTime)

	return report, nil
}

// buildTasks lays out the host-major, port-minor cross product, with each
// host's control probe following its ports.
func buildTasks(plan scanPlan) []ProbeTask {

	size := len(plan.ports)
	if plan.control {
		size++
	}
	tasks := make([]ProbeTask, 0, len(plan.hosts)*size)

	for i, host := range plan.hosts {
		for j, port := range plan.ports {
			tasks = append(tasks, ProbeTask{
				Host:    host,
				Port:    port,
				hostIdx: i,
				portIdx: j,
			})
		}
		if plan.control {
			tasks = append(tasks, ProbeTask{
				Host:    host,
				Port:    plan.controlPort,
				control: true,
				hostIdx: i,
			})
		}
	}

	return tasks
}

func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return configError(field, "must be within 1-65535, got %d", port)
	}
	return nil
}
