package upgrade

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Probe answers the hardware questions an upgrade plan asks. Each
// method is called at most once per run; an error counts as a failed
// requirement, never as a skip.
type Probe interface {
	CPU() (cores int, freqMHz float64, err error)
	RAMGB() (float64, error)
	SystemDiskGB() (float64, error)
	TPMVersion() (string, error)
	SecureBootEnabled() (bool, error)
}

// SystemProbe reads requirement inputs from the live host.
type SystemProbe struct{}

// CPU returns the logical core count and the advertised frequency of
// the first processor.
func (SystemProbe) CPU() (int, float64, error) {
	cores, err := cpu.Counts(true)
	if err != nil {
		return 0, 0, fmt.Errorf("count cpus: %w", err)
	}
	infos, err := cpu.Info()
	if err != nil {
		return cores, 0, fmt.Errorf("query cpu info: %w", err)
	}
	if len(infos) == 0 {
		return cores, 0, errors.New("no cpu info reported")
	}
	return cores, infos[0].Mhz, nil
}

// RAMGB returns the total physical memory in gigabytes.
func (SystemProbe) RAMGB() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("query virtual memory: %w", err)
	}
	return float64(vm.Total) / (1 << 30), nil
}

// SystemDiskGB returns the total capacity of the system drive in
// gigabytes. The requirement is drive size, not free space.
func (SystemProbe) SystemDiskGB() (float64, error) {
	usage, err := disk.Usage(systemDrive)
	if err != nil {
		return 0, fmt.Errorf("query system drive: %w", err)
	}
	return float64(usage.Total) / (1 << 30), nil
}

// TPMVersion reports the TPM spec version where the platform exposes one.
func (SystemProbe) TPMVersion() (string, error) {
	return tpmSpecVersion()
}

// SecureBootEnabled reports the UEFI Secure Boot state.
func (SystemProbe) SecureBootEnabled() (bool, error) {
	return secureBootEnabled()
}

// Host identifies the running OS for path resolution.
type Host struct {
	Windows bool
	Release string
	Build   int
}

// DetectHost reads the platform identity. Release and build stay zero
// on non-Windows hosts and when the platform query fails.
func DetectHost() Host {
	if runtime.GOOS != "windows" {
		return Host{}
	}
	info, err := host.Info()
	if err != nil {
		return Host{Windows: true}
	}
	release, build := ReleaseFromVersion(info.PlatformVersion)
	return Host{Windows: true, Release: release, Build: build}
}
