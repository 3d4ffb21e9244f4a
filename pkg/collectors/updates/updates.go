// Package updates reports the most recently installed operating system
// update. The query surface only exists on Windows; other platforms
// compile a provider that reports the capability gap instead.
package updates

import (
	"errors"
	"fmt"
	"time"

	"syshealth/pkg/health"
)

// ErrUnsupported marks platforms without a queryable update history.
var ErrUnsupported = errors.New("update history requires Windows")

// HotFix is one installed update entry.
type HotFix struct {
	ID          string
	Description string
	InstalledOn time.Time
	RawDate     string
}

// Provider supplies the installed-update history.
type Provider interface {
	History() ([]HotFix, error)
}

// Collector reports the most recent installed update.
type Collector struct {
	provider Provider
}

// New creates an update history collector backed by the platform provider.
func New() *Collector {
	return &Collector{provider: newPlatformProvider()}
}

// NewWithProvider creates a collector reading from an explicit provider.
func NewWithProvider(p Provider) *Collector {
	return &Collector{provider: p}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Last Windows Update"
}

// Collect reports the newest update entry, or a capability note when the
// platform keeps no queryable update history.
func (c *Collector) Collect(rec *health.Recorder) error {
	fixes, err := c.provider.History()
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			rec.Notef("This feature is only available for Windows.")
			return nil
		}
		return fmt.Errorf("query update history: %w", err)
	}

	latest, ok := Newest(fixes)
	if !ok {
		rec.Successf("No update information found. Your system may be up-to-date.")
		return nil
	}

	rec.Infof("Hotfix ID: %s", latest.ID)
	if latest.Description != "" {
		rec.Infof("Type: %s", latest.Description)
	}
	if when := latest.installedOnString(); when != "" {
		rec.Infof("Installed On: %s", when)
	}
	return nil
}

// installedOnString prefers the parsed date and falls back to whatever
// string the platform reported.
func (h HotFix) installedOnString() string {
	if !h.InstalledOn.IsZero() {
		return h.InstalledOn.Format("2006-01-02")
	}
	return h.RawDate
}

// Newest returns the most recently installed entry. Entries with
// unparseable dates lose to any parseable one; if nothing parses, the
// last entry wins, matching the order the platform reported.
func Newest(fixes []HotFix) (HotFix, bool) {
	if len(fixes) == 0 {
		return HotFix{}, false
	}

	latest := fixes[len(fixes)-1]
	for _, f := range fixes {
		if f.InstalledOn.IsZero() {
			continue
		}
		if latest.InstalledOn.IsZero() || f.InstalledOn.After(latest.InstalledOn) {
			latest = f
		}
	}
	return latest, true
}

// installedOnLayouts are the date shapes Win32_QuickFixEngineering has
// been seen to emit.
var installedOnLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

// ParseInstalledOn parses a reported install date; a zero time means the
// string matched no known layout.
func ParseInstalledOn(raw string) time.Time {
	for _, layout := range installedOnLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
