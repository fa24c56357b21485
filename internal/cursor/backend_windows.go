//go:build windows

package cursor

import "github.com/Norgate-AV/winutilz/internal/win32"

type systemBackend struct{}

func (systemBackend) ReloadCursors() error {
	return win32.SystemParametersInfo(win32.SPI_SETCURSORS, 0, nil, win32.SPIF_UPDATEINIFILE|win32.SPIF_SENDCHANGE)
}
