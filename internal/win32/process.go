//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// RtlAdjustPrivilege enables or disables a privilege on the process token
// and returns whether it was enabled before.
func RtlAdjustPrivilege(privilege uint32, enable bool) (bool, error) {
	var previous byte

	status, _, _ := procRtlAdjustPrivilege.Call(
		uintptr(privilege),
		boolToUintptr(enable),
		0, // process token, not the thread token
		uintptr(unsafe.Pointer(&previous)),
	)
	if !ntSuccess(status) {
		return false, ntError("RtlAdjustPrivilege", status)
	}

	return previous != 0, nil
}

func NtSuspendProcess(process windows.Handle) error {
	status, _, _ := procNtSuspendProcess.Call(uintptr(process))
	if !ntSuccess(status) {
		return ntError("NtSuspendProcess", status)
	}

	return nil
}

func NtResumeProcess(process windows.Handle) error {
	status, _, _ := procNtResumeProcess.Call(uintptr(process))
	if !ntSuccess(status) {
		return ntError("NtResumeProcess", status)
	}

	return nil
}

// VirtualAllocEx reserves and commits size bytes in process.
func VirtualAllocEx(process windows.Handle, size uintptr, protect uint32) (uintptr, error) {
	addr, _, err := procVirtualAllocEx.Call(
		uintptr(process),
		0,
		size,
		MEM_COMMIT|MEM_RESERVE,
		uintptr(protect),
	)
	if addr == 0 {
		return 0, lastError("VirtualAllocEx", err)
	}

	return addr, nil
}

// VirtualFreeEx releases a region returned by VirtualAllocEx.
func VirtualFreeEx(process windows.Handle, addr uintptr) error {
	ret, _, err := procVirtualFreeEx.Call(uintptr(process), addr, 0, MEM_RELEASE)
	if ret == 0 {
		return lastError("VirtualFreeEx", err)
	}

	return nil
}

// CreateRemoteThread starts a thread in process at start with param as its argument.
func CreateRemoteThread(process windows.Handle, start, param uintptr) (windows.Handle, error) {
	h, _, err := procCreateRemoteThread.Call(uintptr(process), 0, 0, start, param, 0, 0)
	if h == 0 {
		return 0, lastError("CreateRemoteThread", err)
	}

	return windows.Handle(h), nil
}

func GetExitCodeThread(thread windows.Handle) (uint32, error) {
	var code uint32

	ret, _, err := procGetExitCodeThread.Call(uintptr(thread), uintptr(unsafe.Pointer(&code)))
	if ret == 0 {
		return 0, lastError("GetExitCodeThread", err)
	}

	return code, nil
}

// CurrentProcessWindow returns the first top-level window of the current
// process that has neither an owner nor a parent.
func CurrentProcessWindow() windows.HWND {
	pid := windows.GetCurrentProcessId()

	var found windows.HWND
	_ = EnumWindows(func(hwnd windows.HWND) bool {
		if WindowProcessID(hwnd) != pid {
			return true
		}

		if GetWindow(hwnd, GW_OWNER) != 0 || GetParent(hwnd) != 0 {
			return true
		}

		found = hwnd
		return false
	})

	return found
}

// GetACP returns the system ANSI code page.
func GetACP() uint32 {
	ret, _, _ := procGetACP.Call()
	return uint32(ret)
}
