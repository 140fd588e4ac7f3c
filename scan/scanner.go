package scan

import (
	"strings"
	"time"
)

const (
	DefaultTimeout        = time.Second
	DefaultPortTimeout    = time.Second
	DefaultProtocol       = "tcp"
	DefaultControlPort    = 45000
	DefaultMaxConnections = 6
	DefaultSweepParallel  = 10
)

// Config holds the settings shared by every scan a NetMap runs. Zero values
// fall back to the defaults above.
type Config struct {
	// Timeout is the default liveness threshold for sweeps.
	Timeout time.Duration
	// PortTimeout is the default per-probe ceiling for port scans.
	PortTimeout time.Duration
	// Protocol selects the probe primitive: tcp, http or https.
	Protocol string
	// Prober overrides the primitive chosen by Protocol.
	Prober Prober
}

type NetMap struct {
	timeout     time.Duration
	portTimeout time.Duration
	protocol    string
	prober      Prober
}

func New(config Config) (*NetMap, error) {

	m := &NetMap{
		timeout:     config.Timeout,
		portTimeout: config.PortTimeout,
		protocol:    strings.ToLower(config.Protocol),
		prober:      config.Prober,
	}

	if m.timeout == 0 {
		m.timeout = DefaultTimeout
	}
	if m.portTimeout == 0 {
		m.portTimeout = DefaultPortTimeout
	}
	if m.protocol == "" {
		m.protocol = DefaultProtocol
	}

	if m.timeout < 0 {
		return nil, configError("timeout", "must be positive, got %s", m.timeout)
	}
	if m.portTimeout < 0 {
		return nil, configError("portTimeout", "must be positive, got %s", m.portTimeout)
	}

	if m.prober == nil {
		prober, err := createProber(m.protocol)
		if err != nil {
			return nil, err
		}
		m.prober = prober
	}

	return m, nil
}

func createProber(protocol string) (Prober, error) {
	switch protocol {
	case "tcp", "connect":
		return NewConnectProber(), nil
	case "http", "https":
		return NewHTTPProber(protocol), nil
	}
	return nil, configError("protocol", "is unknown: '%s'", protocol)
}

func (m *NetMap) Protocol() string {
	return m.protocol
}
