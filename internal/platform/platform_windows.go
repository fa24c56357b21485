//go:build windows

package platform

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	dwmapi                      = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmIsCompositionEnabled = dwmapi.NewProc("DwmIsCompositionEnabled")
)

// Supported reports whether the OS wrappers are available on this build.
const Supported = true

// OSVersion returns the real Windows version, unaffected by manifest shims.
func OSVersion() (Version, error) {
	info := windows.RtlGetVersion()

	return Version{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
	}, nil
}

// IsDWMCompositionEnabled reports whether desktop composition is on.
// Composition cannot be turned off on Windows 8 and later.
func IsDWMCompositionEnabled() bool {
	if IsWindows8OrGreater() {
		return true
	}

	if procDwmIsCompositionEnabled.Find() != nil {
		return false
	}

	var enabled int32
	hr, _, _ := procDwmIsCompositionEnabled.Call(uintptr(unsafe.Pointer(&enabled)))

	return int32(hr) >= 0 && enabled != 0
}
