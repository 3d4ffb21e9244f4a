// Package network reports the host's network interfaces.
package network

import (
	"fmt"
	"strings"

	gnet "github.com/shirou/gopsutil/v3/net"

	"syshealth/pkg/health"
)

// Collector lists interfaces with their hardware and IPv4 addresses.
type Collector struct {
	interfaces func() (gnet.InterfaceStatList, error)
}

// New creates a network collector backed by gopsutil.
func New() *Collector {
	return &Collector{interfaces: gnet.Interfaces}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Network Information"
}

// Collect writes one entry per interface. Interfaces carry no health
// thresholds, the section is informational.
func (c *Collector) Collect(rec *health.Recorder) error {
	ifaces, err := c.interfaces()
	if err != nil {
		return fmt.Errorf("enumerate interfaces: %w", err)
	}
	if len(ifaces) == 0 {
		rec.Notef("No network interfaces found.")
		return nil
	}

	for _, iface := range ifaces {
		rec.Itemf("Interface: %s", iface.Name)
		if iface.HardwareAddr != "" {
			rec.Detailf("MAC Address: %s", iface.HardwareAddr)
		}
		for _, addr := range iface.Addrs {
			ip := strings.Split(addr.Addr, "/")[0]
			if strings.Contains(ip, ".") {
				rec.Detailf("IP Address: %s", ip)
			}
		}
	}
	return nil
}
