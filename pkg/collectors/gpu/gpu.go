// Package gpu reports graphics adapter telemetry through an ordered
// provider chain: NVML where it is built, then the nvidia-smi CLI, then a
// platform enumeration that lists adapters without utilization metrics.
package gpu

import (
	"syshealth/pkg/health"
)

// Device is one graphics adapter reading. Enumeration-only providers
// leave HasMetrics false and the threshold never applies to them.
type Device struct {
	Name          string
	DriverVersion string
	MemoryTotalMB float64
	MemoryUsedMB  float64
	Temperature   float64
	LoadPercent   float64
	HasMetrics    bool
}

// Provider yields adapter readings from one query surface. A provider
// that finds nothing returns (nil, nil); errors are reserved for
// surfaces that exist but failed mid-query.
type Provider interface {
	Name() string
	Devices() ([]Device, error)
}

// Collector walks the provider chain in order until one yields devices.
type Collector struct {
	providers []Provider
}

// New creates a GPU collector with the platform's default provider chain.
func New() *Collector {
	return &Collector{providers: defaultProviders()}
}

// NewWithProviders creates a GPU collector with an explicit chain.
func NewWithProviders(providers ...Provider) *Collector {
	return &Collector{providers: providers}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Graphics Card (GPU) Information"
}

// Collect tries each provider in order and renders the first one that
// yields devices. A failing provider is reported and the chain moves on.
func (c *Collector) Collect(rec *health.Recorder) error {
	for _, p := range c.providers {
		devices, err := p.Devices()
		if err != nil {
			rec.Errorf("%s query failed: %v", p.Name(), err)
			continue
		}
		if len(devices) == 0 {
			continue
		}
		c.report(rec, devices)
		return nil
	}

	rec.Notef("No graphics adapters identified.")
	return nil
}

// report renders devices and applies the limits to metric-bearing ones.
// Load and temperature share a single deduction per device.
func (c *Collector) report(rec *health.Recorder, devices []Device) {
	enumerated := false
	for _, d := range devices {
		if d.HasMetrics {
			rec.Itemf("GPU: %s", d.Name)
			if d.DriverVersion != "" {
				rec.Detailf("Driver Version: %s", d.DriverVersion)
			}
			rec.Detailf("Total Memory: %.0f MB", d.MemoryTotalMB)
			rec.Detailf("Used Memory: %.0f MB", d.MemoryUsedMB)
			rec.Detailf("Temperature: %.0f °C", d.Temperature)
			rec.Detailf("Load: %.1f%%", d.LoadPercent)

			if health.Above(d.LoadPercent, health.GPULoadLimit) || health.Above(d.Temperature, health.GPUTempLimit) {
				rec.Breach(health.GPUPenalty, "High GPU temperature or load on %s.", d.Name)
			}
			continue
		}

		if !enumerated {
			rec.Infof("Identified graphics adapters:")
			enumerated = true
		}
		rec.Itemf("%s", d.Name)
		if d.DriverVersion != "" {
			rec.Detailf("Driver Version: %s", d.DriverVersion)
		}
	}
}
