//go:build linux

package cpu

import (
	"os"
	"strconv"
	"strings"
)

// platformFrequency reads the cpufreq sysfs interface, which tracks the
// live governor state rather than the nominal clock gopsutil reports.
// Values are kHz in sysfs.
func platformFrequency() (maxMHz, currentMHz float64) {
	maxMHz = readKHz("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
	currentMHz = readKHz("/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq")
	return maxMHz, currentMHz
}

func readKHz(path string) float64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil || khz <= 0 {
		return 0
	}
	return khz / 1000
}
