// Package battery reports charge level and power state.
package battery

import (
	dbattery "github.com/distatus/battery"

	"syshealth/pkg/health"
)

// Collector reads the host's battery sensors. The query function is a
// field so tests can substitute canned batteries.
type Collector struct {
	get func() ([]*dbattery.Battery, error)
}

// New creates a battery collector reading live sensors.
func New() *Collector {
	return &Collector{get: dbattery.GetAll}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Battery Information"
}

// Collect reports charge and plug state per battery. A host without a
// battery gets a note; that is expected on desktops, not an error.
// Partial read errors are tolerated as long as any battery was read.
func (c *Collector) Collect(rec *health.Recorder) error {
	batteries, _ := c.get()
	if len(batteries) == 0 {
		rec.Notef("Battery information not available.")
		return nil
	}

	reported := false
	for i, b := range batteries {
		if b == nil || b.Full == 0 {
			continue
		}
		reported = true

		percent := b.Current / b.Full * 100
		plugged := b.State != dbattery.Discharging && b.State != dbattery.Empty

		if len(batteries) > 1 {
			rec.Itemf("Battery %d", i+1)
		}
		status := "Plugged In"
		if !plugged {
			status = "On Battery"
		}
		rec.Infof("Charge Level: %.0f%%", percent)
		rec.Infof("Status: %s", status)

		if health.BatteryLow(percent, plugged) {
			rec.Breach(health.BatteryPenalty, "Low battery level and not plugged in.")
		}
	}

	if !reported {
		rec.Notef("Battery information not available.")
	}
	return nil
}
