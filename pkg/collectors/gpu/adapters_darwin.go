//go:build darwin

package gpu

import (
	"context"
	"encoding/json"
	"os/exec"
	"time"
)

const profilerTimeout = 5 * time.Second

// defaultProviders is the GPU chain for macOS: the nvidia-smi CLI for
// the rare eGPU setup, then system_profiler enumeration.
func defaultProviders() []Provider {
	return []Provider{smiProvider{}, profilerProvider{}}
}

// profilerProvider shells out to system_profiler for display adapter
// names. Apple exposes no portable load or temperature counters.
type profilerProvider struct{}

// Name returns the provider name.
func (profilerProvider) Name() string {
	return "system_profiler"
}

type profilerReport struct {
	Displays []struct {
		Name    string `json:"_name"`
		VRAM    string `json:"spdisplays_vram"`
		Vendor  string `json:"spdisplays_vendor"`
		Metal   string `json:"spdisplays_mtlgpufamilysupport"`
		Version string `json:"spdisplays_gmux-version"`
	} `json:"SPDisplaysDataType"`
}

// Devices parses `system_profiler SPDisplaysDataType -json`.
func (profilerProvider) Devices() ([]Device, error) {
	ctx, cancel := context.WithTimeout(context.Background(), profilerTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return nil, nil
	}

	var report profilerReport
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, nil
	}

	var devices []Device
	for _, d := range report.Displays {
		if d.Name == "" {
			continue
		}
		devices = append(devices, Device{Name: d.Name})
	}
	return devices, nil
}
