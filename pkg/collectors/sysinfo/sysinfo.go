// Package sysinfo reports the host's identity: operating system,
// architecture, processor, hostname and uptime.
package sysinfo

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"syshealth/pkg/health"
)

// Collector gathers general system information.
type Collector struct{}

// New creates a new system information collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "System Information"
}

// Collect reports OS identity, processor model, hostname and uptime.
// Fields are best-effort; anything the host does not expose renders as
// "unknown" rather than failing the section.
func (c *Collector) Collect(rec *health.Recorder) error {
	info, err := host.Info()
	if err != nil {
		return fmt.Errorf("query host info: %w", err)
	}

	osName := info.Platform
	if osName == "" {
		osName = info.OS
	}

	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}

	processor := "unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		processor = infos[0].ModelName
	}

	rec.Infof("Operating System: %s %s", osName, info.PlatformVersion)
	if info.KernelVersion != "" {
		rec.Infof("Kernel: %s", info.KernelVersion)
	}
	rec.Infof("Architecture: %s", arch)
	rec.Infof("Processor: %s", processor)
	rec.Infof("Hostname: %s", info.Hostname)
	rec.Infof("Uptime: %s", formatUptime(info.Uptime))
	if info.BootTime > 0 {
		rec.Infof("Boot Time: %s", time.Unix(int64(info.BootTime), 0).Format("2006-01-02 15:04:05"))
	}
	rec.Infof("Current Time: %s", time.Now().Format("2006-01-02 15:04:05"))

	return nil
}

// formatUptime renders seconds of uptime as days, hours and minutes.
func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
