//go:build windows

package firmware

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

type win32BaseBoard struct {
	Manufacturer string
	Product      string
}

type win32BIOS struct {
	Manufacturer      string
	SMBIOSBIOSVersion string
}

// wmiProvider reads board identity from Win32_BaseBoard and Win32_BIOS.
type wmiProvider struct{}

func newPlatformProvider() Provider {
	return wmiProvider{}
}

// Board queries both WMI classes and merges the first row of each.
func (wmiProvider) Board() (Board, error) {
	var boards []win32BaseBoard
	if err := wmi.Query("SELECT Manufacturer, Product FROM Win32_BaseBoard", &boards); err != nil {
		return Board{}, fmt.Errorf("query Win32_BaseBoard: %w", err)
	}

	var bios []win32BIOS
	if err := wmi.Query("SELECT Manufacturer, SMBIOSBIOSVersion FROM Win32_BIOS", &bios); err != nil {
		return Board{}, fmt.Errorf("query Win32_BIOS: %w", err)
	}

	var board Board
	if len(boards) > 0 {
		board.BoardManufacturer = boards[0].Manufacturer
		board.BoardProduct = boards[0].Product
	}
	if len(bios) > 0 {
		board.BIOSManufacturer = bios[0].Manufacturer
		board.BIOSVersion = bios[0].SMBIOSBIOSVersion
	}
	return board, nil
}
