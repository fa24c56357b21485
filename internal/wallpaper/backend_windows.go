//go:build windows

package wallpaper

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

func (systemBackend) SetWallpaper(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	return win32.SystemParametersInfo(
		win32.SPI_SETDESKWALLPAPER,
		0,
		unsafe.Pointer(p),
		win32.SPIF_UPDATEINIFILE|win32.SPIF_SENDCHANGE,
	)
}

func (systemBackend) Wallpaper() (string, error) {
	var buf [win32.MAX_PATH]uint16

	if err := win32.SystemParametersInfo(win32.SPI_GETDESKWALLPAPER, uint32(len(buf)), unsafe.Pointer(&buf[0]), 0); err != nil {
		return "", err
	}

	return windows.UTF16ToString(buf[:]), nil
}
