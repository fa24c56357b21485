//go:build windows

package win32

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// shCreateWorkerWindowOrdinal is SHCreateWorkerWindowW, exported by
// shlwapi.dll by ordinal only.
const shCreateWorkerWindowOrdinal = 278

// ShellExecuteEx mask flags.
const (
	// SEE_MASK_NOCLOSEPROCESS keeps the launched process handle in HProcess.
	SEE_MASK_NOCLOSEPROCESS = 0x00000040
	SEE_MASK_FLAG_NO_UI     = 0x00000400
)

// ShellExecuteEx calls ShellExecuteExW. CbSize is filled in.
func ShellExecuteEx(sei *SHELLEXECUTEINFO) error {
	sei.CbSize = uint32(unsafe.Sizeof(*sei))

	ret, _, err := procShellExecuteExW.Call(uintptr(unsafe.Pointer(sei)))
	if ret == 0 {
		return lastError("ShellExecuteExW", err)
	}

	return nil
}

// SHELLSTATE is only read for its first flag word; the rest is opaque.
type SHELLSTATE struct {
	Flags1 uint32
	_      [28]byte
}

// IconsHidden reports the SSF_HIDEICONS shell setting.
func IconsHidden() bool {
	var state SHELLSTATE

	_, _, _ = procSHGetSetSettings.Call(uintptr(unsafe.Pointer(&state)), SSF_HIDEICONS, 0)

	// fHideIcons is bit 12 of the first flag word.
	return state.Flags1&(1<<12) != 0
}

var (
	workerOnce sync.Once
	workerProc uintptr
	workerErr  error
)

// resolveWorkerWindow loads shlwapi.dll once and keeps it loaded, since the
// worker window procedure lives inside it.
func resolveWorkerWindow() (uintptr, error) {
	workerOnce.Do(func() {
		lib, err := windows.LoadLibraryEx("shlwapi.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
		if err != nil {
			workerErr = fmt.Errorf("load shlwapi.dll: %w", err)
			return
		}

		workerProc, workerErr = windows.GetProcAddressByOrdinal(lib, shCreateWorkerWindowOrdinal)
		if workerErr != nil {
			workerErr = fmt.Errorf("SHCreateWorkerWindowW: %w", workerErr)
		}
	})

	return workerProc, workerErr
}

// CreateWorkerWindow creates a hidden message window via SHCreateWorkerWindowW.
// The caller must destroy it with DestroyWindow.
func CreateWorkerWindow() (windows.HWND, error) {
	proc, err := resolveWorkerWindow()
	if err != nil {
		return 0, err
	}

	hwnd, _, callErr := syscall.SyscallN(proc, 0, 0, 0, 0, 0, 0)
	if hwnd == 0 {
		return 0, lastError("SHCreateWorkerWindowW", callErr)
	}

	return windows.HWND(hwnd), nil
}
