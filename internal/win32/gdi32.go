//go:build windows

package win32

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetDC returns the device context of hwnd; 0 means the whole screen.
func GetDC(hwnd windows.HWND) (windows.Handle, error) {
	ret, _, err := procGetDC.Call(uintptr(hwnd))
	if ret == 0 {
		return 0, lastError("GetDC", err)
	}

	return windows.Handle(ret), nil
}

// GetWindowDC returns a device context covering the whole window, including the frame.
func GetWindowDC(hwnd windows.HWND) (windows.Handle, error) {
	ret, _, err := procGetWindowDC.Call(uintptr(hwnd))
	if ret == 0 {
		return 0, lastError("GetWindowDC", err)
	}

	return windows.Handle(ret), nil
}

func ReleaseDC(hwnd windows.HWND, dc windows.Handle) {
	_, _, _ = procReleaseDC.Call(uintptr(hwnd), uintptr(dc))
}

func CreateCompatibleDC(dc windows.Handle) (windows.Handle, error) {
	ret, _, err := procCreateCompatibleDC.Call(uintptr(dc))
	if ret == 0 {
		return 0, lastError("CreateCompatibleDC", err)
	}

	return windows.Handle(ret), nil
}

func DeleteDC(dc windows.Handle) {
	_, _, _ = procDeleteDC.Call(uintptr(dc))
}

func SelectObject(dc, obj windows.Handle) windows.Handle {
	ret, _, _ := procSelectObject.Call(uintptr(dc), uintptr(obj))
	return windows.Handle(ret)
}

func DeleteObject(obj windows.Handle) {
	_, _, _ = procDeleteObject.Call(uintptr(obj))
}

// CreateDIBSection creates a bitmap described by bmi and returns it together
// with a pointer to its pixel storage.
func CreateDIBSection(dc windows.Handle, bmi *BITMAPINFO) (windows.Handle, unsafe.Pointer, error) {
	var bits unsafe.Pointer

	ret, _, err := procCreateDIBSection.Call(
		uintptr(dc),
		uintptr(unsafe.Pointer(bmi)),
		DIB_RGB_COLORS,
		uintptr(unsafe.Pointer(&bits)),
		0,
		0,
	)
	if ret == 0 || bits == nil {
		return 0, nil, lastError("CreateDIBSection", err)
	}

	return windows.Handle(ret), bits, nil
}

func BitBlt(dst windows.Handle, x, y, w, h int32, src windows.Handle, srcX, srcY int32, rop uint32) error {
	ret, _, err := procBitBlt.Call(
		uintptr(dst),
		uintptr(x),
		uintptr(y),
		uintptr(w),
		uintptr(h),
		uintptr(src),
		uintptr(srcX),
		uintptr(srcY),
		uintptr(rop),
	)
	if ret == 0 {
		return lastError("BitBlt", err)
	}

	return nil
}

// PrintWindow asks hwnd to render itself into dc.
func PrintWindow(hwnd windows.HWND, dc windows.Handle, flags uint32) error {
	ret, _, err := procPrintWindow.Call(uintptr(hwnd), uintptr(dc), uintptr(flags))
	if ret == 0 {
		return lastError("PrintWindow", err)
	}

	return nil
}

// GetBitmap returns the BITMAP description of a bitmap handle.
func GetBitmap(bitmap windows.Handle) (BITMAP, error) {
	var bm BITMAP

	ret, _, err := procGetObjectW.Call(
		uintptr(bitmap),
		unsafe.Sizeof(bm),
		uintptr(unsafe.Pointer(&bm)),
	)
	if ret == 0 {
		return BITMAP{}, lastError("GetObjectW", err)
	}

	return bm, nil
}

// GetDIBits copies the rows of bitmap into dst using the format described by bmi.
func GetDIBits(dc, bitmap windows.Handle, lines uint32, dst []byte, bmi *BITMAPINFO) error {
	if len(dst) == 0 {
		return errors.New("GetDIBits: empty destination")
	}

	ret, _, err := procGetDIBits.Call(
		uintptr(dc),
		uintptr(bitmap),
		0,
		uintptr(lines),
		uintptr(unsafe.Pointer(&dst[0])),
		uintptr(unsafe.Pointer(bmi)),
		DIB_RGB_COLORS,
	)
	if ret == 0 {
		return lastError("GetDIBits", err)
	}

	return nil
}
