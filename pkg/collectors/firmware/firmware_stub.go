//go:build !windows

package firmware

// unsupportedProvider stands in where WMI is unavailable.
type unsupportedProvider struct{}

func newPlatformProvider() Provider {
	return unsupportedProvider{}
}

func (unsupportedProvider) Board() (Board, error) {
	return Board{}, ErrUnsupported
}
