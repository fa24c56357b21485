//go:build windows

package win32

import (
	"unsafe"
)

// NtInitiatePowerAction requests a system power transition.
func NtInitiatePowerAction(action, minState, flags uint32, async bool) error {
	status, _, _ := procNtInitiatePowerAction.Call(
		uintptr(action),
		uintptr(minState),
		uintptr(flags),
		boolToUintptr(async),
	)
	if !ntSuccess(status) {
		return ntError("NtInitiatePowerAction", status)
	}

	return nil
}

// PowerCapabilities queries SystemPowerCapabilities.
func PowerCapabilities() (SYSTEM_POWER_CAPABILITIES, error) {
	var caps SYSTEM_POWER_CAPABILITIES

	status, _, _ := procNtPowerInformation.Call(
		SystemPowerCapabilities,
		0,
		0,
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if !ntSuccess(status) {
		return SYSTEM_POWER_CAPABILITIES{}, ntError("NtPowerInformation", status)
	}

	return caps, nil
}

// NtRaiseHardError raises a hard error with the given response option and
// returns the response.
func NtRaiseHardError(status uint32, option uint32) (uint32, error) {
	var response uint32

	ret, _, _ := procNtRaiseHardError.Call(
		uintptr(status),
		0,
		0,
		0,
		uintptr(option),
		uintptr(unsafe.Pointer(&response)),
	)
	if !ntSuccess(ret) {
		return 0, ntError("NtRaiseHardError", ret)
	}

	return response, nil
}
