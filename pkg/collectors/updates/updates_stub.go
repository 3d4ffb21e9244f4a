//go:build !windows

package updates

// unsupportedProvider stands in on platforms without an update registry.
type unsupportedProvider struct{}

func newPlatformProvider() Provider {
	return unsupportedProvider{}
}

// History always reports the capability gap.
func (unsupportedProvider) History() ([]HotFix, error) {
	return nil, ErrUnsupported
}
