package scan

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

// HTTPProber issues a single request to scheme://host:port/. A response and
// an error both count as settlement, only the time taken matters.
type HTTPProber struct {
	scheme string
	client *http.Client
}

func NewHTTPProber(scheme string) *HTTPProber {
	return &HTTPProber{
		scheme: scheme,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *HTTPProber) Probe(ctx context.Context, host string, port int) ProbeResult {

	result := ProbeResult{
		Host: host,
		Port: port,
	}

	url := fmt.Sprintf("%s://%s/", p.scheme, net.JoinHostPort(host, strconv.Itoa(port)))

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Delta = time.Since(start)
		return result
	}

	resp, err := p.client.Do(req)
	result.Delta = time.Since(start)
	if err != nil {
		result.Status = dialStatus(err)
		return result
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	resp.Body.Close()

	result.Status = StatusAccepted
	return result
}
