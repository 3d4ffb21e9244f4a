//go:build linux

package gpu

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// nvmlProvider queries the NVIDIA management library directly.
type nvmlProvider struct{}

// Name returns the provider name.
func (nvmlProvider) Name() string {
	return "NVML"
}

// Devices reads per-device telemetry via NVML. A host without the
// library or driver is a quiet miss; errors after a successful Init mean
// the surface exists but misbehaved.
func (nvmlProvider) Devices() ([]Device, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, nil
	}
	defer func() {
		_ = nvml.Shutdown()
	}()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("device count: %s", nvml.ErrorString(ret))
	}

	driver := ""
	if version, ret := nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		driver = version
	}

	devices := make([]Device, 0, count)
	for i := 0; i < count; i++ {
		handle, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return nil, fmt.Errorf("device handle %d: %s", i, nvml.ErrorString(ret))
		}

		d := Device{DriverVersion: driver, HasMetrics: true}
		if name, ret := handle.GetName(); ret == nvml.SUCCESS {
			d.Name = name
		}
		if mem, ret := handle.GetMemoryInfo(); ret == nvml.SUCCESS {
			d.MemoryTotalMB = float64(mem.Total) / (1024 * 1024)
			d.MemoryUsedMB = float64(mem.Used) / (1024 * 1024)
		}
		if temp, ret := handle.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
			d.Temperature = float64(temp)
		}
		if util, ret := handle.GetUtilizationRates(); ret == nvml.SUCCESS {
			d.LoadPercent = float64(util.Gpu)
		}
		devices = append(devices, d)
	}
	return devices, nil
}
