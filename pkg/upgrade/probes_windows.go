//go:build windows

package upgrade

import (
	"errors"
	"fmt"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows/registry"
)

const systemDrive = `C:\`

type win32Tpm struct {
	SpecVersion string
}

// tpmSpecVersion reads the TPM spec version from the WMI security
// namespace. Hosts without a TPM return an error, which the evaluator
// treats as a failed requirement.
func tpmSpecVersion() (string, error) {
	var tpms []win32Tpm
	q := "SELECT SpecVersion FROM Win32_Tpm"
	if err := wmi.Query(q, &tpms, nil, `root\CIMV2\Security\MicrosoftTpm`); err != nil {
		return "", fmt.Errorf("query Win32_Tpm: %w", err)
	}
	if len(tpms) == 0 {
		return "", errors.New("no TPM device present")
	}
	return tpms[0].SpecVersion, nil
}

// secureBootEnabled reads the UEFI Secure Boot state from the registry.
// Legacy BIOS hosts have no SecureBoot key at all.
func secureBootEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SecureBoot\State`, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("open SecureBoot state key: %w", err)
	}
	defer key.Close()

	enabled, _, err := key.GetIntegerValue("UEFISecureBootEnabled")
	if err != nil {
		return false, fmt.Errorf("read UEFISecureBootEnabled: %w", err)
	}
	return enabled == 1, nil
}
