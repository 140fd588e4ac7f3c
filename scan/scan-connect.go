package scan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// ConnectProber settles on the outcome of a plain TCP connect.
type ConnectProber struct {
	dialer *net.Dialer
}

func NewConnectProber() *ConnectProber {
	return &ConnectProber{
		dialer: &net.Dialer{},
	}
}

func (p *ConnectProber) Probe(ctx context.Context, host string, port int) ProbeResult {

	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	delta := time.Since(start)

	result := ProbeResult{
		Host:  host,
		Port:  port,
		Delta: delta,
	}

	if err != nil {
		result.Status = dialStatus(err)
		return result
	}
	conn.Close()
	result.Status = StatusAccepted
	return result
}

func dialStatus(err error) ProbeStatus {
	if errors.Is(err, syscall.ECONNREFUSED) || strings.Contains(err.Error(), "refused") {
		return StatusRefused
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimeout
	}
	return StatusUnknown
}
