package upgrade

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"syshealth/pkg/health"
)

// Check runs the upgrade compatibility section against the live host.
func Check(rec *health.Recorder, log *logrus.Logger) {
	Run(rec, log, DetectHost(), SystemProbe{})
}

// Run renders the upgrade section for the given host and probe. The
// section banner depends on the branch: hosts with an available path
// get a target-specific banner, every other outcome falls under the
// generic one.
func Run(rec *health.Recorder, log *logrus.Logger, h Host, probe Probe) {
	if !h.Windows {
		rec.Section("Windows Upgrade Compatibility")
		rec.Notef("This check is only applicable for Windows operating systems.")
		return
	}

	plan := Resolve(h.Release, h.Build)
	switch plan.Status {
	case PathCurrent:
		rec.Section("Windows Upgrade Compatibility")
		rec.Successf("Your system is already running Windows 11 or a newer version. No upgrade check needed.")
		return
	case PathUndefined:
		rec.Section("Windows Upgrade Compatibility")
		rec.Notef("No specific upgrade path is defined for your current OS version: %s.", h.Release)
		return
	}

	rec.Section(fmt.Sprintf("Upgrade Compatibility Check for %s", plan.Target))
	a := Evaluate(plan, probe)
	Render(rec, a)

	if log != nil {
		result := "Compatible"
		if !a.Compatible {
			result = "Not Compatible"
		}
		log.Infof("Upgrade compatibility for %s Result: %s", a.Target, result)
	}
}

// Render writes the requirement lines and the final verdict.
func Render(rec *health.Recorder, a Assessment) {
	for _, r := range a.Results {
		if r.Reading != "" {
			rec.Infof("%s", r.Reading)
		}
		if r.Passed {
			rec.Successf("PASSED: %s", r.Verdict)
		} else {
			rec.Errorf("FAILED: %s", r.Verdict)
		}
	}

	if a.Compatible {
		rec.Successf("Your PC can be upgraded to %s.", a.Target)
	} else {
		rec.Errorf("Your PC does not meet the minimum requirements for %s.", a.Target)
	}
}
