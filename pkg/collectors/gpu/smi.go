package gpu

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const smiTimeout = 3 * time.Second

// smiProvider shells out to nvidia-smi, the query path the NVIDIA driver
// ships on every platform.
type smiProvider struct{}

// Name returns the provider name.
func (smiProvider) Name() string {
	return "nvidia-smi"
}

// Devices queries nvidia-smi for one CSV row per device. A missing
// binary or a driverless host is a quiet miss so the chain can fall
// through to enumeration.
func (smiProvider) Devices() ([]Device, error) {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), smiTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=name,driver_version,memory.total,memory.used,temperature.gpu,utilization.gpu",
		"--format=csv,noheader,nounits").Output()
	if err != nil {
		// The CLI exists but no usable device sits behind it.
		return nil, nil
	}

	return parseSMI(string(out)), nil
}

// parseSMI parses nvidia-smi CSV output. Fields that report N/A keep
// their zero value; the row still counts as a metric reading.
func parseSMI(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, ", ")
		if len(fields) < 6 {
			continue
		}

		d := Device{
			Name:          strings.TrimSpace(fields[0]),
			DriverVersion: strings.TrimSpace(fields[1]),
			MemoryTotalMB: parseFloat(fields[2]),
			MemoryUsedMB:  parseFloat(fields[3]),
			Temperature:   parseFloat(fields[4]),
			LoadPercent:   parseFloat(fields[5]),
			HasMetrics:    true,
		}
		if d.Name == "" {
			continue
		}
		devices = append(devices, d)
	}
	return devices
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
