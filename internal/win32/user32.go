//go:build windows

package win32

import (
	"errors"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SystemParametersInfo calls SystemParametersInfoW.
func SystemParametersInfo(action, uiParam uint32, pvParam unsafe.Pointer, winIni uint32) error {
	ret, _, err := procSystemParametersInfoW.Call(
		uintptr(action),
		uintptr(uiParam),
		uintptr(pvParam),
		uintptr(winIni),
	)
	if ret == 0 {
		return lastError("SystemParametersInfoW", err)
	}

	return nil
}

// GetSysColor returns the GDI COLORREF of a system color element.
func GetSysColor(index int32) uint32 {
	ret, _, _ := procGetSysColor.Call(uintptr(index))
	return uint32(ret)
}

// SetSysColors applies colors to the given elements for the current session.
func SetSysColors(elements []int32, colors []uint32) error {
	if len(elements) == 0 || len(elements) != len(colors) {
		return errors.New("SetSysColors: elements and colors must be non-empty and equal length")
	}

	ret, _, err := procSetSysColors.Call(
		uintptr(len(elements)),
		uintptr(unsafe.Pointer(&elements[0])),
		uintptr(unsafe.Pointer(&colors[0])),
	)
	if ret == 0 {
		return lastError("SetSysColors", err)
	}

	return nil
}

var (
	enumMu       sync.Mutex
	enumFn       func(hwnd windows.HWND) bool
	enumCallback = windows.NewCallback(func(hwnd, _ uintptr) uintptr {
		if enumFn != nil && enumFn(windows.HWND(hwnd)) {
			return 1
		}

		return 0
	})
)

// EnumWindows calls fn for every top-level window until fn returns false.
// A single callback is shared across calls, so fn must not call EnumWindows.
func EnumWindows(fn func(hwnd windows.HWND) bool) error {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumFn = fn
	defer func() { enumFn = nil }()

	ret, _, err := procEnumWindows.Call(enumCallback, 0)
	if ret == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return lastError("EnumWindows", err)
		}
	}

	return nil
}

// WindowProcessID returns the id of the process that created hwnd.
func WindowProcessID(hwnd windows.HWND) uint32 {
	var pid uint32
	_, _, _ = procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	return pid
}

// GetWindow returns the window with the given relationship to hwnd, or 0.
func GetWindow(hwnd windows.HWND, cmd uint32) windows.HWND {
	ret, _, _ := procGetWindow.Call(uintptr(hwnd), uintptr(cmd))
	return windows.HWND(ret)
}

// GetParent returns the parent or owner of hwnd, or 0.
func GetParent(hwnd windows.HWND) windows.HWND {
	ret, _, _ := procGetParent.Call(uintptr(hwnd))
	return windows.HWND(ret)
}

// GetAncestor returns the ancestor of hwnd selected by flags.
func GetAncestor(hwnd windows.HWND, flags uint32) windows.HWND {
	ret, _, _ := procGetAncestor.Call(uintptr(hwnd), uintptr(flags))
	return windows.HWND(ret)
}

// IsChildWindow reports whether hwnd has a real parent (not the desktop).
func IsChildWindow(hwnd windows.HWND) bool {
	parent := GetAncestor(hwnd, GA_PARENT)
	return parent != 0 && parent != GetDesktopWindow()
}

func DestroyWindow(hwnd windows.HWND) error {
	ret, _, err := procDestroyWindow.Call(uintptr(hwnd))
	if ret == 0 {
		return lastError("DestroyWindow", err)
	}

	return nil
}

func IsWindow(hwnd windows.HWND) bool {
	ret, _, _ := procIsWindow.Call(uintptr(hwnd))
	return ret != 0
}

func GetShellWindow() windows.HWND {
	ret, _, _ := procGetShellWindow.Call()
	return windows.HWND(ret)
}

func GetDesktopWindow() windows.HWND {
	ret, _, _ := procGetDesktopWindow.Call()
	return windows.HWND(ret)
}

// FindWindow looks up a top-level window by class and/or title.
// An empty string matches any value.
func FindWindow(class, title string) (windows.HWND, error) {
	classPtr, err := optionalUTF16(class)
	if err != nil {
		return 0, err
	}

	titlePtr, err := optionalUTF16(title)
	if err != nil {
		return 0, err
	}

	ret, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(classPtr)), uintptr(unsafe.Pointer(titlePtr)))
	return windows.HWND(ret), nil
}

// FindWindowEx looks up a child of parent by class, starting after childAfter.
func FindWindowEx(parent, childAfter windows.HWND, class string) windows.HWND {
	classPtr, err := optionalUTF16(class)
	if err != nil {
		return 0
	}

	ret, _, _ := procFindWindowExW.Call(
		uintptr(parent),
		uintptr(childAfter),
		uintptr(unsafe.Pointer(classPtr)),
		0,
	)

	return windows.HWND(ret)
}

func SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procSendMessageW.Call(hwnd, uintptr(msg), wParam, lParam)
	return ret
}

// GetWindowLongPtr reads a window attribute such as GWL_STYLE.
func GetWindowLongPtr(hwnd windows.HWND, index int32) (uintptr, error) {
	ret, _, err := procGetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index))
	if ret == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return 0, lastError("GetWindowLongPtrW", err)
		}
	}

	return ret, nil
}

// SetWindowLongPtr writes a window attribute and returns the previous value.
func SetWindowLongPtr(hwnd windows.HWND, index int32, value uintptr) (uintptr, error) {
	ret, _, err := procSetWindowLongPtrW.Call(uintptr(hwnd), uintptr(index), value)
	if ret == 0 {
		var errno windows.Errno
		if errors.As(err, &errno) && errno != 0 {
			return 0, lastError("SetWindowLongPtrW", err)
		}
	}

	return ret, nil
}

func SetWindowPos(hwnd, insertAfter windows.HWND, x, y, cx, cy int32, flags uint32) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(hwnd),
		uintptr(insertAfter),
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(flags),
	)
	if ret == 0 {
		return lastError("SetWindowPos", err)
	}

	return nil
}

func GetWindowRect(hwnd windows.HWND) (RECT, error) {
	var r RECT
	ret, _, err := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return RECT{}, lastError("GetWindowRect", err)
	}

	return r, nil
}

func GetClientRect(hwnd windows.HWND) (RECT, error) {
	var r RECT
	ret, _, err := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return RECT{}, lastError("GetClientRect", err)
	}

	return r, nil
}

// MonitorWorkArea returns the work area of the monitor nearest to hwnd.
func MonitorWorkArea(hwnd windows.HWND) (RECT, error) {
	monitor, _, _ := procMonitorFromWindow.Call(uintptr(hwnd), MONITOR_DEFAULTTONEAREST)
	if monitor == 0 {
		return RECT{}, errors.New("MonitorFromWindow returned no monitor")
	}

	info := MONITORINFO{CbSize: uint32(unsafe.Sizeof(MONITORINFO{}))}
	ret, _, err := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return RECT{}, lastError("GetMonitorInfoW", err)
	}

	return info.RcWork, nil
}

// GetClassName returns the window class name of hwnd.
func GetClassName(hwnd windows.HWND) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

// GetWindowText returns the title of hwnd.
func GetWindowText(hwnd windows.HWND) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf[:n])
}

func LockWorkStation() error {
	ret, _, err := procLockWorkStation.Call()
	if ret == 0 {
		return lastError("LockWorkStation", err)
	}

	return nil
}

func ExitWindowsEx(flags, reason uint32) error {
	ret, _, err := procExitWindowsEx.Call(uintptr(flags), uintptr(reason))
	if ret == 0 {
		return lastError("ExitWindowsEx", err)
	}

	return nil
}

func optionalUTF16(s string) (*uint16, error) {
	if s == "" {
		return nil, nil
	}

	return windows.UTF16PtrFromString(s)
}
