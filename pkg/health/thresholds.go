package health

// Fixed limits and penalties applied during a run. The report is not
// tunable; the verdict tiers below are calibrated against these values.
const (
	CPUUsageLimit   = 85.0
	CPUUsagePenalty = 10

	CPUTempLimit   = 85.0
	CPUTempPenalty = 15

	MemoryLimit   = 85.0
	MemoryPenalty = 10

	DiskLimit   = 90.0
	DiskPenalty = 10

	BatteryFloor   = 30.0
	BatteryPenalty = 10

	GPULoadLimit = 90.0
	GPUTempLimit = 85.0
	GPUPenalty   = 10
)

// Above reports whether a reading breaches a high-watermark limit.
func Above(value, limit float64) bool {
	return value > limit
}

// BatteryLow reports whether a battery reading warrants a deduction:
// charge under the floor while running on battery power. A plugged-in
// battery never penalizes regardless of charge.
func BatteryLow(percent float64, plugged bool) bool {
	return percent < BatteryFloor && !plugged
}

// Verdict is the tone tier derived from the final score.
type Verdict string

const (
	VerdictGood      Verdict = "good"
	VerdictAttention Verdict = "attention"
	VerdictPoor      Verdict = "poor"
)

// VerdictFor maps a final score to its tone tier.
func VerdictFor(score int) Verdict {
	if score >= 80 {
		return VerdictGood
	}
	if score >= 50 {
		return VerdictAttention
	}
	return VerdictPoor
}

// Message returns the closing assessment printed for the tier.
func (v Verdict) Message() string {
	switch v {
	case VerdictGood:
		return "The system is in good condition."
	case VerdictAttention:
		return "Some areas need attention."
	default:
		return "The system is in poor condition. Professional inspection is recommended."
	}
}
