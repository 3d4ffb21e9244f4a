//go:build !linux

package cpu

// platformFrequency has no refinement outside Linux; gopsutil's nominal
// clock stands in for both values.
func platformFrequency() (maxMHz, currentMHz float64) {
	return 0, 0
}
