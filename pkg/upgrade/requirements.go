// Package upgrade checks whether the host meets the requirements to
// move to the next Windows release.
package upgrade

import (
	"strconv"
	"strings"
)

// Target is the Windows release an upgrade path leads to.
type Target string

const (
	TargetWindows81 Target = "Windows 8.1"
	TargetWindows10 Target = "Windows 10"
	TargetWindows11 Target = "Windows 11"
)

// PathStatus classifies the host's position on the upgrade ladder.
type PathStatus string

const (
	PathAvailable PathStatus = "available"
	PathCurrent   PathStatus = "current"
	PathUndefined PathStatus = "undefined"
)

// Windows 11 shipped as build 22000 of the NT 10.0 line.
const win11MinBuild = 22000

// Requirements is the minimum hardware bar for one upgrade target.
type Requirements struct {
	Cores           int
	FreqMHz         float64
	RAMGB           float64
	DiskGB          float64
	NeedsTPM2       bool
	NeedsSecureBoot bool
}

// Plan is the resolved upgrade path for a host release.
type Plan struct {
	Status       PathStatus
	Target       Target
	Requirements Requirements
}

// Resolve maps a marketing release and build number to an upgrade plan.
// Release 10 covers both Windows 10 and 11; the build number tells them
// apart.
func Resolve(release string, build int) Plan {
	switch release {
	case "7":
		return Plan{
			Status: PathAvailable,
			Target: TargetWindows81,
			Requirements: Requirements{
				Cores:   1,
				FreqMHz: 1000,
				RAMGB:   2,
				DiskGB:  40,
			},
		}
	case "8":
		return Plan{
			Status: PathAvailable,
			Target: TargetWindows10,
			Requirements: Requirements{
				Cores:   1,
				FreqMHz: 1000,
				RAMGB:   2,
				DiskGB:  40,
			},
		}
	case "10":
		if build >= win11MinBuild {
			return Plan{Status: PathCurrent}
		}
		return Plan{
			Status: PathAvailable,
			Target: TargetWindows11,
			Requirements: Requirements{
				Cores:           2,
				FreqMHz:         1000,
				RAMGB:           4,
				DiskGB:          64,
				NeedsTPM2:       true,
				NeedsSecureBoot: true,
			},
		}
	default:
		return Plan{Status: PathUndefined}
	}
}

// ReleaseFromVersion maps an NT version string ("10.0.19045", possibly
// with a trailing "Build NNNNN" suffix) to the marketing release the
// upgrade ladder keys on, plus the build number from the third dotted
// component. NT 6.3 (Windows 8.1) lands on the release-8 path, which is
// the path a major-version split gives it.
func ReleaseFromVersion(version string) (release string, build int) {
	if fields := strings.Fields(version); len(fields) > 0 {
		version = fields[0]
	}

	parts := strings.Split(version, ".")
	if len(parts) >= 3 {
		build, _ = strconv.Atoi(parts[2])
	}

	switch {
	case strings.HasPrefix(version, "6.1"):
		return "7", build
	case strings.HasPrefix(version, "6.2"), strings.HasPrefix(version, "6.3"):
		return "8", build
	case strings.HasPrefix(version, "10."):
		return "10", build
	}
	if len(parts) > 0 && parts[0] != "" {
		return parts[0], build
	}
	return version, build
}
