// Package cpu reports processor identity, frequency, utilization and
// temperature.
package cpu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	gcpu "github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"

	"syshealth/pkg/health"
)

// Reading is one sampled view of the processor.
type Reading struct {
	PhysicalCores int
	LogicalCores  int
	MaxMHz        float64
	CurrentMHz    float64
	UsagePercent  float64
	Temperature   float64
	HasTemp       bool
	Load1         float64
	Load5         float64
	Load15        float64
	HasLoad       bool
}

// Collector gathers CPU telemetry.
type Collector struct{}

// New creates a new CPU collector.
func New() *Collector {
	return &Collector{}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Processor (CPU) Information"
}

// Collect samples the processor and reports the reading. The utilization
// sample deliberately blocks for one second.
func (c *Collector) Collect(rec *health.Recorder) error {
	var r Reading

	if n, err := gcpu.Counts(true); err == nil {
		r.LogicalCores = n
	}
	if n, err := gcpu.Counts(false); err == nil {
		r.PhysicalCores = n
	}

	r.MaxMHz, r.CurrentMHz = readFrequency()

	percents, err := gcpu.Percent(time.Second, false)
	if err != nil {
		return fmt.Errorf("sample cpu utilization: %w", err)
	}
	if len(percents) == 0 {
		return errors.New("no cpu utilization sample reported")
	}
	r.UsagePercent = percents[0]

	r.Temperature, r.HasTemp = readTemperature()

	if avg, err := load.Avg(); err == nil && avg != nil {
		r.Load1, r.Load5, r.Load15 = avg.Load1, avg.Load5, avg.Load15
		r.HasLoad = true
	}

	c.report(rec, r)
	return nil
}

// report renders a reading and applies the usage and temperature limits.
func (c *Collector) report(rec *health.Recorder, r Reading) {
	rec.Infof("Core Count: %d", r.LogicalCores)
	if r.PhysicalCores > 0 && r.PhysicalCores != r.LogicalCores {
		rec.Infof("Physical Cores: %d", r.PhysicalCores)
	}
	if r.MaxMHz > 0 {
		rec.Infof("Max Frequency: %.2f MHz", r.MaxMHz)
	}
	if r.CurrentMHz > 0 {
		rec.Infof("Current Frequency: %.2f MHz", r.CurrentMHz)
	}
	rec.Infof("CPU Usage: %.1f%%", r.UsagePercent)
	if r.HasLoad {
		rec.Infof("Load Average: %.2f %.2f %.2f", r.Load1, r.Load5, r.Load15)
	}

	if r.HasTemp {
		rec.Infof("CPU Temperature: %.1f°C", r.Temperature)
		if health.Above(r.Temperature, health.CPUTempLimit) {
			rec.Breach(health.CPUTempPenalty, "High CPU temperature detected (%.1f°C).", r.Temperature)
		}
	} else {
		rec.Notef("CPU temperature information not available for this platform.")
	}

	if health.Above(r.UsagePercent, health.CPUUsageLimit) {
		rec.Breach(health.CPUUsagePenalty, "High CPU usage detected (%.1f%%).", r.UsagePercent)
	}
}

// readFrequency returns the nominal and current clock in MHz. The
// platform refinement is consulted first; gopsutil's nominal value backs
// both when nothing better exists.
func readFrequency() (maxMHz, currentMHz float64) {
	maxMHz, currentMHz = platformFrequency()

	if maxMHz == 0 || currentMHz == 0 {
		if infos, err := gcpu.Info(); err == nil && len(infos) > 0 && infos[0].Mhz > 0 {
			if maxMHz == 0 {
				maxMHz = infos[0].Mhz
			}
			if currentMHz == 0 {
				currentMHz = infos[0].Mhz
			}
		}
	}
	return maxMHz, currentMHz
}

// coreSensorKeys name the temperature sensors that track the CPU
// package, in preference order.
var coreSensorKeys = []string{"coretemp", "k10temp", "tctl", "cpu_thermal", "cpu thermal", "package"}

// readTemperature scans the host sensors for a core temperature.
func readTemperature() (float64, bool) {
	stats, err := host.SensorsTemperatures()
	if err != nil || len(stats) == 0 {
		return 0, false
	}

	for _, key := range coreSensorKeys {
		for _, s := range stats {
			if !strings.Contains(strings.ToLower(s.SensorKey), key) {
				continue
			}
			// Sensors occasionally report zero or junk on the first read.
			if s.Temperature > 0 && s.Temperature < 150 {
				return s.Temperature, true
			}
		}
	}
	return 0, false
}
