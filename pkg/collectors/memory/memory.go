// Package memory reports RAM and swap usage.
package memory

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"syshealth/pkg/health"
)

// Reading is one view of memory pressure.
type Reading struct {
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
	UsedPercent    float64
	SwapTotal      uint64
	SwapUsed       uint64
	SwapPercent    float64
}

// Collector gathers memory telemetry.
type Collector struct{}

// New creates a new memory collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Memory (RAM) Information"
}

// Collect reads virtual memory and swap and reports the usage.
func (c *Collector) Collect(rec *health.Recorder) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("query virtual memory: %w", err)
	}

	r := Reading{
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		AvailableBytes: vm.Available,
		UsedPercent:    vm.UsedPercent,
	}

	if swap, err := mem.SwapMemory(); err == nil && swap.Total > 0 {
		r.SwapTotal = swap.Total
		r.SwapUsed = swap.Used
		r.SwapPercent = swap.UsedPercent
	}

	c.report(rec, r)
	return nil
}

// report renders a reading and applies the usage limit. Swap is
// informational only.
func (c *Collector) report(rec *health.Recorder, r Reading) {
	rec.Infof("Total Memory: %.2f GB", gb(r.TotalBytes))
	rec.Infof("Used Memory: %.2f GB", gb(r.UsedBytes))
	if r.AvailableBytes > 0 {
		rec.Infof("Available Memory: %.2f GB", gb(r.AvailableBytes))
	}
	rec.Infof("Memory Usage: %.1f%%", r.UsedPercent)
	if r.SwapTotal > 0 {
		rec.Infof("Swap Usage: %.2f GB of %.2f GB (%.1f%%)", gb(r.SwapUsed), gb(r.SwapTotal), r.SwapPercent)
	}

	if health.Above(r.UsedPercent, health.MemoryLimit) {
		rec.Breach(health.MemoryPenalty, "High RAM usage detected (%.1f%%).", r.UsedPercent)
	}
}

// gb converts bytes to gigabytes.
func gb(b uint64) float64 {
	return float64(b) / (1 << 30)
}
