package scan

import (
	"fmt"
	"time"
)

type PortResult struct {
	Port   int           `json:"port" yaml:"port"`
	Delta  time.Duration `json:"delta" yaml:"delta"`
	Open   bool          `json:"open" yaml:"open"`
	Status ProbeStatus   `json:"status" yaml:"status"`
}

type HostScanResult struct {
	Host    string       `json:"host" yaml:"host"`
	Ports   []PortResult `json:"ports" yaml:"ports"`
	Control ProbeResult  `json:"control" yaml:"control"`
}

// ScanMetadata echoes the configuration a scan ran with and its wall-clock
// bounds. ScanDuration is always EndTime minus StartTime.
type ScanMetadata struct {
	ID             string        `json:"id" yaml:"id"`
	Protocol       string        `json:"protocol" yaml:"protocol"`
	Hosts          []string      `json:"hosts" yaml:"hosts"`
	Ports          []int         `json:"ports" yaml:"ports"`
	ControlPort    int           `json:"controlPort,omitempty" yaml:"controlPort,omitempty"`
	MaxConnections int           `json:"maxConnections" yaml:"maxConnections"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	StartTime      time.Time     `json:"startTime" yaml:"startTime"`
	EndTime        time.Time     `json:"endTime" yaml:"endTime"`
	ScanDuration   time.Duration `json:"scanDuration" yaml:"scanDuration"`
}

type ScanReport struct {
	Meta  ScanMetadata     `json:"meta" yaml:"meta"`
	Hosts []HostScanResult `json:"hosts" yaml:"hosts"`
}

type SweepHostResult struct {
	Host         string        `json:"host" yaml:"host"`
	Delta        time.Duration `json:"delta" yaml:"delta"`
	Live         bool          `json:"live" yaml:"live"`
	MAC          string        `json:"mac,omitempty" yaml:"mac,omitempty"`
	Manufacturer string        `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
}

type SweepReport struct {
	Meta  ScanMetadata      `json:"meta" yaml:"meta"`
	Hosts []SweepHostResult `json:"hosts" yaml:"hosts"`
}

func (r HostScanResult) OpenPorts() []PortResult {
	open := []PortResult{}
	for _, port := range r.Ports {
		if port.Open {
			open = append(open, port)
		}
	}
	return open
}

func (r HostScanResult) String() string {

	text := fmt.Sprintf("Scan results for host %s\n", r.Host)
	text = fmt.Sprintf("%s\tControl port %d settled in %s\n", text, r.Control.Port, r.Control.Delta.String())

	if len(r.Ports) > 0 {
		text = fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\n",
			text,
			pad("PORT", 10),
			pad("STATE", 10),
			pad("DELTA", 14),
			"SERVICE",
		)
	}

	for _, port := range r.Ports {
		state := "CLOSED"
		if port.Open {
			state = "OPEN"
		}
		text = fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\n",
			text,
			pad(fmt.Sprintf("%d/tcp", port.Port), 10),
			pad(state, 10),
			pad(port.Delta.String(), 14),
			DescribePort(port.Port),
		)
	}

	return text
}

func (r SweepHostResult) String() string {

	text := fmt.Sprintf("Sweep results for host %s\n", r.Host)

	status := "DOWN"
	if r.Live {
		status = "UP"
	}

	text = fmt.Sprintf("%s\t%s %s\n", text, pad("Status:", 24), status)
	text = fmt.Sprintf("%s\t%s %s\n", text, pad("Delta:", 24), r.Delta.String())

	if r.MAC != "" {
		text = fmt.Sprintf("%s\t%s %s\n", text, pad("MAC:", 24), r.MAC)
	}
	if r.Manufacturer != "" {
		text = fmt.Sprintf("%s\t%s %s\n", text, pad("Manufacturer:", 24), r.Manufacturer)
	}
	if r.Name != "" {
		text = fmt.Sprintf("%s\t%s %s\n", text, pad("Name:", 24), r.Name)
	}

	return text
}

func (m ScanMetadata) String() string {
	return fmt.Sprintf(
		"Scanned %d host(s) over %d port(s) with %d connection(s) in %s",
		len(m.Hosts),
		len(m.Ports),
		m.MaxConnections,
		m.ScanDuration.String(),
	)
}

func pad(input string, length int) string {
	for len(input) < length {
		input += " "
	}
	return input
}
