//go:build windows

package window

import (
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

func toRect(r win32.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func (systemBackend) IsWindow(hwnd uintptr) bool {
	return win32.IsWindow(windows.HWND(hwnd))
}

func (systemBackend) Parent(hwnd uintptr) uintptr {
	return uintptr(win32.GetParent(windows.HWND(hwnd)))
}

func (systemBackend) WindowRect(hwnd uintptr) (Rect, error) {
	r, err := win32.GetWindowRect(windows.HWND(hwnd))
	return toRect(r), err
}

func (systemBackend) ClientRect(hwnd uintptr) (Rect, error) {
	r, err := win32.GetClientRect(windows.HWND(hwnd))
	return toRect(r), err
}

func (systemBackend) WorkArea(hwnd uintptr) (Rect, error) {
	r, err := win32.MonitorWorkArea(windows.HWND(hwnd))
	return toRect(r), err
}

func (systemBackend) Move(hwnd uintptr, x, y int32) error {
	return win32.SetWindowPos(windows.HWND(hwnd), 0, x, y, 0, 0,
		win32.SWP_NOSIZE|win32.SWP_NOZORDER|win32.SWP_NOACTIVATE)
}

func (systemBackend) Long(hwnd uintptr, index int32) (uint32, error) {
	v, err := win32.GetWindowLongPtr(windows.HWND(hwnd), index)
	return uint32(v), err
}

func (systemBackend) SetLong(hwnd uintptr, index int32, value uint32) error {
	_, err := win32.SetWindowLongPtr(windows.HWND(hwnd), index, uintptr(value))
	return err
}

func (systemBackend) FrameChanged(hwnd uintptr) error {
	return win32.SetWindowPos(windows.HWND(hwnd), 0, 0, 0, 0, 0,
		win32.SWP_FRAMECHANGED|win32.SWP_NOMOVE|win32.SWP_NOSIZE|win32.SWP_NOZORDER)
}

func (systemBackend) Find(class, title string) (uintptr, error) {
	hwnd, err := win32.FindWindow(class, title)
	return uintptr(hwnd), err
}

func (systemBackend) ClassName(hwnd uintptr) string {
	return win32.GetClassName(windows.HWND(hwnd))
}

func (systemBackend) Text(hwnd uintptr) string {
	return win32.GetWindowText(windows.HWND(hwnd))
}
