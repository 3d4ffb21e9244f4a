//go:build windows

package updates

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// win32QuickFixEngineering mirrors the WMI class of the same name.
type win32QuickFixEngineering struct {
	HotFixID    string
	Description string
	InstalledOn string
}

// wmiProvider reads the hotfix history through WMI.
type wmiProvider struct{}

func newPlatformProvider() Provider {
	return wmiProvider{}
}

// History lists every installed hotfix.
func (wmiProvider) History() ([]HotFix, error) {
	var entries []win32QuickFixEngineering
	q := "SELECT HotFixID, Description, InstalledOn FROM Win32_QuickFixEngineering"
	if err := wmi.Query(q, &entries); err != nil {
		return nil, fmt.Errorf("query Win32_QuickFixEngineering: %w", err)
	}

	fixes := make([]HotFix, 0, len(entries))
	for _, e := range entries {
		fixes = append(fixes, HotFix{
			ID:          e.HotFixID,
			Description: e.Description,
			InstalledOn: ParseInstalledOn(e.InstalledOn),
			RawDate:     e.InstalledOn,
		})
	}
	return fixes, nil
}
