//go:build windows

package shell

import (
	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

type systemBackend struct{}

func (systemBackend) ShellWindow() (uintptr, error) {
	return uintptr(win32.GetShellWindow()), nil
}

func (systemBackend) FindChild(parent uintptr, class string) uintptr {
	return uintptr(win32.FindWindowEx(windows.HWND(parent), 0, class))
}

func (systemBackend) EnumTopLevel(fn func(hwnd uintptr) bool) error {
	return win32.EnumWindows(func(hwnd windows.HWND) bool {
		return fn(uintptr(hwnd))
	})
}

func (systemBackend) NextSibling(hwnd uintptr) uintptr {
	return uintptr(win32.GetWindow(windows.HWND(hwnd), win32.GW_HWNDNEXT))
}

func (systemBackend) PrevSibling(hwnd uintptr) uintptr {
	return uintptr(win32.GetWindow(windows.HWND(hwnd), win32.GW_HWNDPREV))
}

func (systemBackend) SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	return win32.SendMessage(hwnd, msg, wParam, lParam)
}

func (systemBackend) IconsHidden() (bool, error) {
	return win32.IconsHidden(), nil
}
