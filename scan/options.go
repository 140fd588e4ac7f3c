package scan

import "time"

type scanOptions struct {
	maxConnections int
	timeout        time.Duration
	portTimeout    time.Duration
	controlPort    int
	portCallback   func(ProbeResult)
}

// ScanOption configures a single TCPScan call.
type ScanOption func(*scanOptions)

func WithMaxConnections(n int) ScanOption {
	return func(o *scanOptions) {
		o.maxConnections = n
	}
}

// WithTimeout sets the per-probe ceiling. WithPortTimeout takes precedence
// when both are given.
func WithTimeout(timeout time.Duration) ScanOption {
	return func(o *scanOptions) {
		o.timeout = timeout
	}
}

func WithPortTimeout(timeout time.Duration) ScanOption {
	return func(o *scanOptions) {
		o.portTimeout = timeout
	}
}

func WithControlPort(port int) ScanOption {
	return func(o *scanOptions) {
		o.controlPort = port
	}
}

// WithPortCallback registers fn to receive every probe result as it settles,
// control probes included. Calls never overlap.
func WithPortCallback(fn func(ProbeResult)) ScanOption {
	return func(o *scanOptions) {
		o.portCallback = fn
	}
}

type sweepOptions struct {
	maxConnections int
	port           int
	timeout        time.Duration
	lookupDevices  bool
}

// SweepOption configures a single PingSweep call.
type SweepOption func(*sweepOptions)

func WithSweepMaxConnections(n int) SweepOption {
	return func(o *sweepOptions) {
		o.maxConnections = n
	}
}

// WithSweepPort sets the port probed on every host. Zero picks a random high
// port for the invocation.
func WithSweepPort(port int) SweepOption {
	return func(o *sweepOptions) {
		o.port = port
	}
}

func WithLivenessTimeout(timeout time.Duration) SweepOption {
	return func(o *sweepOptions) {
		o.timeout = timeout
	}
}

// WithDeviceLookup enriches live hosts with their MAC address, vendor and
// reverse DNS name where the local ARP cache knows them.
func WithDeviceLookup() SweepOption {
	return func(o *sweepOptions) {
		o.lookupDevices = true
	}
}
