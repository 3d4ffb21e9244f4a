//go:build linux

package gpu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultProviders is the GPU chain for Linux: NVML, then the
// nvidia-smi CLI, then bare DRM enumeration.
func defaultProviders() []Provider {
	return []Provider{nvmlProvider{}, smiProvider{}, drmProvider{}}
}

// drmProvider lists render devices from /sys/class/drm when no NVIDIA
// query path yields data. No metrics, names and drivers only.
type drmProvider struct{}

// Name returns the provider name.
func (drmProvider) Name() string {
	return "DRM sysfs"
}

// Devices scans carddirs under /sys/class/drm.
func (drmProvider) Devices() ([]Device, error) {
	cards, err := filepath.Glob("/sys/class/drm/card[0-9]*")
	if err != nil || len(cards) == 0 {
		return nil, nil
	}

	var devices []Device
	for _, card := range cards {
		base := filepath.Base(card)
		// card0-HDMI-A-1 style entries are connectors, not adapters.
		if strings.Contains(base, "-") {
			continue
		}

		name := base
		if driver := readDriver(filepath.Join(card, "device", "uevent")); driver != "" {
			name = fmt.Sprintf("%s (%s)", base, driver)
		}
		devices = append(devices, Device{Name: name})
	}
	return devices, nil
}

// readDriver pulls the DRIVER= line out of a device uevent file.
func readDriver(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "DRIVER=") {
			return strings.TrimSpace(strings.TrimPrefix(line, "DRIVER="))
		}
	}
	return ""
}
