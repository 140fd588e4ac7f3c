package scan

import (
	"io"
	"net"
)

// TargetIterator walks a target expression: a CIDR range yields every address
// in it, anything else (an IP or a hostname) is yielded once as given.
type TargetIterator struct {
	target string
	isCIDR bool
	index  int
	ip     net.IP
	ipnet  *net.IPNet
}

func NewTargetIterator(target string) *TargetIterator {

	ip, ipnet, err := net.ParseCIDR(target)

	ti := &TargetIterator{
		target: target,
		isCIDR: err == nil,
	}

	if ti.isCIDR {
		ti.ip = ip.Mask(ipnet.Mask)
		ti.ipnet = ipnet
	}

	return ti
}

func (ti *TargetIterator) Peek() (string, error) {
	if !ti.isCIDR {
		if ti.index > 0 {
			return "", io.EOF
		}
		return ti.target, nil
	}
	if ti.ipnet.Contains(ti.ip) {
		return ti.ip.String(), nil
	}
	return "", io.EOF
}

func (ti *TargetIterator) Next() (string, error) {

	host, err := ti.Peek()
	if err != nil {
		return "", err
	}

	ti.index++
	if ti.isCIDR {
		ti.incrementIP()
	}

	return host, nil
}

func (ti *TargetIterator) incrementIP() {
	for j := len(ti.ip) - 1; j >= 0; j-- {
		ti.ip[j]++
		if ti.ip[j] > 0 {
			break
		}
	}
}

// ExpandTargets flattens target expressions into the ordered host list a
// scan expects.
func ExpandTargets(targets []string) ([]string, error) {
	hosts := []string{}
	for _, target := range targets {
		ti := NewTargetIterator(target)
		for {
			host, err := ti.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			hosts = append(hosts, host)
		}
	}
	return hosts, nil
}
