// Package disk reports capacity for every mounted partition.
package disk

import (
	"fmt"
	"os"

	gdisk "github.com/shirou/gopsutil/v3/disk"

	"syshealth/pkg/health"
)

// Collector gathers per-partition disk capacity. The query functions are
// fields so tests can substitute canned partitions.
type Collector struct {
	partitions func(all bool) ([]gdisk.PartitionStat, error)
	usage      func(path string) (*gdisk.UsageStat, error)
}

// New creates a disk collector reading live partitions.
func New() *Collector {
	return &Collector{
		partitions: gdisk.Partitions,
		usage:      gdisk.Usage,
	}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Disk Information"
}

// Collect enumerates mounted partitions and reports usage per partition.
// A partition that denies access is reported and skipped; it never stops
// the enumeration. Every partition over the limit deducts separately.
func (c *Collector) Collect(rec *health.Recorder) error {
	parts, err := c.partitions(false)
	if err != nil {
		return fmt.Errorf("enumerate partitions: %w", err)
	}

	for _, part := range parts {
		usage, err := c.usage(part.Mountpoint)
		if err != nil {
			if os.IsPermission(err) {
				rec.Errorf("Access denied for drive %s.", part.Device)
			} else {
				rec.Errorf("Failed to get disk information for %s: %v", part.Device, err)
			}
			continue
		}
		if usage == nil || usage.Total == 0 {
			continue
		}

		rec.Itemf("Drive: %s (%s)", part.Device, part.Mountpoint)
		if part.Fstype != "" {
			rec.Detailf("Filesystem: %s", part.Fstype)
		}
		rec.Detailf("Total Space: %.2f GB", gb(usage.Total))
		rec.Detailf("Used Space: %.2f GB", gb(usage.Used))
		rec.Detailf("Free Space: %.2f GB", gb(usage.Free))
		rec.Detailf("Usage Percentage: %.1f%%", usage.UsedPercent)

		if health.Above(usage.UsedPercent, health.DiskLimit) {
			rec.Breach(health.DiskPenalty, "Drive %s is nearly full (%.1f%%).", part.Device, usage.UsedPercent)
		}
	}
	return nil
}

// gb converts bytes to gigabytes.
func gb(b uint64) float64 {
	return float64(b) / (1 << 30)
}
