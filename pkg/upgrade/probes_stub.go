//go:build !windows

package upgrade

import "errors"

const systemDrive = "/"

// The section returns before probing on non-Windows hosts; these stubs
// exist so SystemProbe compiles everywhere.

func tpmSpecVersion() (string, error) {
	return "", errors.New("TPM query not supported on this platform")
}

func secureBootEnabled() (bool, error) {
	return false, errors.New("Secure Boot query not supported on this platform")
}
