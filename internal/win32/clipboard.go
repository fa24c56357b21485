//go:build windows

package win32

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

func OpenClipboard(owner windows.HWND) error {
	ret, _, err := procOpenClipboard.Call(uintptr(owner))
	if ret == 0 {
		return lastError("OpenClipboard", err)
	}

	return nil
}

func CloseClipboard() error {
	ret, _, err := procCloseClipboard.Call()
	if ret == 0 {
		return lastError("CloseClipboard", err)
	}

	return nil
}

func EmptyClipboard() error {
	ret, _, err := procEmptyClipboard.Call()
	if ret == 0 {
		return lastError("EmptyClipboard", err)
	}

	return nil
}

func IsClipboardFormatAvailable(format uint32) bool {
	ret, _, _ := procIsClipboardFormatAvailable.Call(uintptr(format))
	return ret != 0
}

// GetClipboardBytes copies the global memory block stored under format.
// The clipboard must be open.
func GetClipboardBytes(format uint32) ([]byte, error) {
	h, _, err := procGetClipboardData.Call(uintptr(format))
	if h == 0 {
		return nil, lastError("GetClipboardData", err)
	}

	return globalBytes(h)
}

// SetClipboardBytes copies data into a moveable global block and hands it to
// the clipboard. The clipboard must be open and owned by the caller.
func SetClipboardBytes(format uint32, data []byte) error {
	h, err := globalAllocBytes(data)
	if err != nil {
		return err
	}

	ret, _, err := procSetClipboardData.Call(uintptr(format), h)
	if ret == 0 {
		// Ownership only transfers on success.
		_, _, _ = procGlobalFree.Call(h)
		return lastError("SetClipboardData", err)
	}

	return nil
}

func globalAllocBytes(data []byte) (uintptr, error) {
	if len(data) == 0 {
		return 0, errors.New("GlobalAlloc: empty data")
	}

	h, _, err := procGlobalAlloc.Call(GMEM_MOVEABLE, uintptr(len(data)))
	if h == 0 {
		return 0, lastError("GlobalAlloc", err)
	}

	ptr, _, err := procGlobalLock.Call(h)
	if ptr == 0 {
		_, _, _ = procGlobalFree.Call(h)
		return 0, lastError("GlobalLock", err)
	}

	copy(unsafe.Slice((*byte)(pointerAt(ptr)), len(data)), data)
	_, _, _ = procGlobalUnlock.Call(h)

	return h, nil
}

func globalBytes(h uintptr) ([]byte, error) {
	size, _, err := procGlobalSize.Call(h)
	if size == 0 {
		return nil, lastError("GlobalSize", err)
	}

	ptr, _, err := procGlobalLock.Call(h)
	if ptr == 0 {
		return nil, lastError("GlobalLock", err)
	}
	defer procGlobalUnlock.Call(h)

	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(pointerAt(ptr)), size))

	return out, nil
}

// GlobalFree releases a global memory handle returned by an API.
func GlobalFree(h uintptr) {
	_, _, _ = procGlobalFree.Call(h)
}
