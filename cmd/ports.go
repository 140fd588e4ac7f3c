package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liamg/netmap/scan"
)

func getPorts(selection string) ([]int, error) {
	if selection == "" {
		return scan.DefaultPorts, nil
	}
	ports := []int{}
	ranges := strings.Split(selection, ",")
	for _, r := range ranges {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if strings.Contains(r, "-") {
			parts := strings.Split(r, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("Invalid port selection segment: '%s'", r)
			}

			p1, err := parsePort(parts[0])
			if err != nil {
				return nil, err
			}

			p2, err := parsePort(parts[1])
			if err != nil {
				return nil, err
			}

			if p1 > p2 {
				return nil, fmt.Errorf("Invalid port range: %d-%d", p1, p2)
			}

			for i := p1; i <= p2; i++ {
				ports = append(ports, i)
			}

		} else {
			port, err := parsePort(r)
			if err != nil {
				return nil, err
			}
			ports = append(ports, port)
		}
	}
	return ports, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("Invalid port number: '%s'", raw)
	}
	return port, nil
}
