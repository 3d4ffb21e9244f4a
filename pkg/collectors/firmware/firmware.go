// Package firmware reports motherboard and BIOS identity.
package firmware

import (
	"errors"

	"syshealth/pkg/health"
)

// ErrUnsupported marks platforms with no firmware inventory source.
var ErrUnsupported = errors.New("firmware inventory not supported on this platform")

// Board identifies the motherboard and its BIOS.
type Board struct {
	BoardManufacturer string
	BoardProduct      string
	BIOSManufacturer  string
	BIOSVersion       string
}

// Provider reads firmware identity from the platform.
type Provider interface {
	Board() (Board, error)
}

// Collector writes the advanced hardware section of the report.
type Collector struct {
	provider Provider
}

// New creates a firmware collector for the current platform.
func New() *Collector {
	return &Collector{provider: newPlatformProvider()}
}

// NewWithProvider creates a collector backed by the given provider.
func NewWithProvider(p Provider) *Collector {
	return &Collector{provider: p}
}

// Name returns the report section title.
func (c *Collector) Name() string {
	return "Advanced Hardware Information"
}

// Collect reports board and BIOS identity, or notes the platform gap.
func (c *Collector) Collect(rec *health.Recorder) error {
	board, err := c.provider.Board()
	if errors.Is(err, ErrUnsupported) {
		rec.Notef("This feature is only available for Windows.")
		return nil
	}
	if err != nil {
		return err
	}

	if board.BoardManufacturer != "" {
		rec.Infof("Motherboard Manufacturer: %s", board.BoardManufacturer)
	}
	if board.BoardProduct != "" {
		rec.Infof("Motherboard Model: %s", board.BoardProduct)
	}
	if board.BIOSManufacturer != "" {
		rec.Infof("BIOS Manufacturer: %s", board.BIOSManufacturer)
	}
	if board.BIOSVersion != "" {
		rec.Infof("BIOS Version: %s", board.BIOSVersion)
	}
	return nil
}
