package upgrade

import (
	"fmt"
	"strings"
)

// RequirementResult is the outcome of one evaluated requirement.
// Reading is the measured-versus-required line; it stays empty when the
// probe could not answer.
type RequirementResult struct {
	Requirement string
	Reading     string
	Verdict     string
	Passed      bool
}

// Assessment is the outcome of checking a host against an upgrade plan.
type Assessment struct {
	Target     Target
	Results    []RequirementResult
	Compatible bool
}

func (a *Assessment) add(requirement, reading, verdict string, passed bool) {
	if !passed {
		a.Compatible = false
	}
	a.Results = append(a.Results, RequirementResult{
		Requirement: requirement,
		Reading:     reading,
		Verdict:     verdict,
		Passed:      passed,
	})
}

// Evaluate checks every requirement of the plan against the probe.
// Requirements are independent: evaluation never short-circuits, core
// count and frequency are judged separately, and a probe that cannot
// answer counts as a failed requirement.
func Evaluate(plan Plan, probe Probe) Assessment {
	a := Assessment{Target: plan.Target, Compatible: true}
	req := plan.Requirements

	cores, freqMHz, err := probe.CPU()
	if err != nil {
		a.add("CPU Cores", "", "Could not check CPU core count.", false)
		a.add("CPU Frequency", "", "Could not check CPU frequency.", false)
	} else {
		reading := fmt.Sprintf("CPU Cores: %d (Required: %d+)", cores, req.Cores)
		if cores >= req.Cores {
			a.add("CPU Cores", reading, "CPU core count meets minimum requirements.", true)
		} else {
			a.add("CPU Cores", reading, "CPU core count does not meet minimum requirements.", false)
		}

		reading = fmt.Sprintf("CPU Frequency: %.2f MHz (Required: %.0f+ MHz)", freqMHz, req.FreqMHz)
		if freqMHz >= req.FreqMHz {
			a.add("CPU Frequency", reading, "CPU frequency meets minimum requirements.", true)
		} else {
			a.add("CPU Frequency", reading, "CPU frequency does not meet minimum requirements.", false)
		}
	}

	ramGB, err := probe.RAMGB()
	if err != nil {
		a.add("RAM", "", "Could not check RAM info.", false)
	} else {
		reading := fmt.Sprintf("Total RAM: %.2f GB (Required: %.0f+ GB)", ramGB, req.RAMGB)
		if ramGB >= req.RAMGB {
			a.add("RAM", reading, "RAM meets minimum requirements.", true)
		} else {
			a.add("RAM", reading, "Insufficient RAM.", false)
		}
	}

	diskGB, err := probe.SystemDiskGB()
	if err != nil {
		a.add("Storage", "", "Could not check storage info.", false)
	} else {
		reading := fmt.Sprintf("System Drive Storage: %.2f GB (Required: %.0f+ GB)", diskGB, req.DiskGB)
		if diskGB >= req.DiskGB {
			a.add("Storage", reading, "Storage meets minimum requirements.", true)
		} else {
			a.add("Storage", reading, "Insufficient storage on system drive.", false)
		}
	}

	if req.NeedsSecureBoot {
		enabled, err := probe.SecureBootEnabled()
		if err != nil {
			a.add("Secure Boot", "", "Could not check Secure Boot state.", false)
		} else {
			state := "Disabled"
			if enabled {
				state = "Enabled"
			}
			reading := fmt.Sprintf("Secure Boot: %s (Required: Enabled)", state)
			if enabled {
				a.add("Secure Boot", reading, "Secure Boot is enabled.", true)
			} else {
				a.add("Secure Boot", reading, "Secure Boot is not enabled.", false)
			}
		}
	}

	if req.NeedsTPM2 {
		version, err := probe.TPMVersion()
		if err != nil {
			a.add("TPM", "", "Could not check TPM status.", false)
		} else {
			shown := version
			if shown == "" {
				shown = "unknown"
			}
			reading := fmt.Sprintf("TPM Version: %s (Required: 2.0)", shown)
			if strings.Contains(version, "2.0") {
				a.add("TPM", reading, "TPM 2.0 is detected.", true)
			} else {
				a.add("TPM", reading, "TPM 2.0 is not detected or enabled.", false)
			}
		}
	}

	return a
}
