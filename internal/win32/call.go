//go:build windows

package win32

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// lastError turns the error returned by LazyProc.Call into something useful.
// Call always returns a non-nil error; ERROR_SUCCESS means the API failed
// without setting a last error code.
func lastError(name string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) && errno == 0 {
		return fmt.Errorf("%s failed", name)
	}

	return fmt.Errorf("%s: %w", name, err)
}

// ntError wraps a failed NTSTATUS.
func ntError(name string, status uintptr) error {
	return fmt.Errorf("%s: %w", name, windows.NTStatus(uint32(status)))
}

func ntSuccess(status uintptr) bool {
	return int32(status) >= 0
}

func boolToUintptr(b bool) uintptr {
	if b {
		return 1
	}

	return 0
}

// pointerAt turns an address returned by the OS back into a pointer. The
// memory must stay pinned by the OS (GlobalLock, LockResource) while in use.
func pointerAt(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
