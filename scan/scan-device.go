package scan

import (
	"net"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
)

type Device struct {
	MAC          string
	Manufacturer string
	Name         string
}

// LookupDevice reads what the local ARP cache knows about host. Hosts outside
// the local segment come back empty.
func LookupDevice(host string) Device {

	device := Device{}

	ip := net.ParseIP(host)
	if ip == nil {
		return device
	}

	macStr := arp.Search(ip.String())
	if macStr == "" || macStr == "00:00:00:00:00:00" {
		return device
	}

	mac, err := net.ParseMAC(macStr)
	if err != nil || len(mac) < 3 {
		return device
	}

	device.MAC = mac.String()
	device.Manufacturer = Manufacturer(mac)

	// only bother looking up hostname for local devices
	if addr, err := net.LookupAddr(ip.String()); err == nil && len(addr) > 0 {
		device.Name = addr[0]
	}

	return device
}

func Manufacturer(mac net.HardwareAddr) string {
	if len(mac) < 3 {
		return ""
	}
	prefix := [3]byte{
		mac[0],
		mac[1],
		mac[2],
	}
	return macs.ValidMACPrefixMap[prefix]
}
