//go:build windows

package gpu

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// defaultProviders is the GPU chain for Windows: the nvidia-smi CLI
// when the driver ships it, then WMI adapter enumeration.
func defaultProviders() []Provider {
	return []Provider{smiProvider{}, wmiAdapterProvider{}}
}

type win32VideoController struct {
	Name          string
	DriverVersion string
}

type win32DesktopMonitor struct {
	Name         string
	ScreenWidth  *uint32
	ScreenHeight *uint32
}

// wmiAdapterProvider lists video controllers and attached monitors via
// WMI. No load or temperature metrics are exposed there.
type wmiAdapterProvider struct{}

// Name returns the provider name.
func (wmiAdapterProvider) Name() string {
	return "WMI"
}

// Devices returns one entry per Win32_VideoController, followed by one
// per Win32_DesktopMonitor so the report also lists connected displays.
func (wmiAdapterProvider) Devices() ([]Device, error) {
	var controllers []win32VideoController
	if err := wmi.Query("SELECT Name, DriverVersion FROM Win32_VideoController", &controllers); err != nil {
		return nil, fmt.Errorf("query Win32_VideoController: %w", err)
	}

	var devices []Device
	for _, c := range controllers {
		if c.Name == "" {
			continue
		}
		devices = append(devices, Device{Name: c.Name, DriverVersion: c.DriverVersion})
	}

	// Monitor rows carry nullable resolution columns, hence pointers.
	var monitors []win32DesktopMonitor
	if err := wmi.Query("SELECT Name, ScreenWidth, ScreenHeight FROM Win32_DesktopMonitor", &monitors); err == nil {
		for _, m := range monitors {
			if m.Name == "" {
				continue
			}
			name := fmt.Sprintf("Display: %s", m.Name)
			if m.ScreenWidth != nil && m.ScreenHeight != nil && *m.ScreenWidth > 0 {
				name = fmt.Sprintf("Display: %s (%dx%d)", m.Name, *m.ScreenWidth, *m.ScreenHeight)
			}
			devices = append(devices, Device{Name: name})
		}
	}

	return devices, nil
}
