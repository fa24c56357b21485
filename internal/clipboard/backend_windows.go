//go:build windows

package clipboard

import (
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

// OwnerWindow prefers a top-level window of this process and otherwise
// creates a hidden worker window for the duration of the transaction.
func (systemBackend) OwnerWindow() (uintptr, func(), error) {
	if hwnd := win32.CurrentProcessWindow(); hwnd != 0 {
		return uintptr(hwnd), func() {}, nil
	}

	hwnd, err := win32.CreateWorkerWindow()
	if err != nil {
		return 0, nil, err
	}

	return uintptr(hwnd), func() { _ = win32.DestroyWindow(hwnd) }, nil
}

func (systemBackend) Open(owner uintptr) error {
	return win32.OpenClipboard(windows.HWND(owner))
}

func (systemBackend) Close() error {
	return win32.CloseClipboard()
}

func (systemBackend) Empty() error {
	return win32.EmptyClipboard()
}

func (systemBackend) IsFormatAvailable(format uint32) bool {
	return win32.IsClipboardFormatAvailable(format)
}

func (systemBackend) GetData(format uint32) ([]byte, error) {
	return win32.GetClipboardBytes(format)
}

func (systemBackend) SetData(format uint32, data []byte) error {
	return win32.SetClipboardBytes(format, data)
}
