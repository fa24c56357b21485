//go:build !windows

package power

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) MonitorOff() error {
	return platform.Unsupported("screen off")
}

func (systemBackend) LockWorkStation() error {
	return platform.Unsupported("lock workstation")
}

func (systemBackend) Sleep() error {
	return platform.Unsupported("sleep")
}

func (systemBackend) SoftOffSupported() (bool, error) {
	return false, platform.Unsupported("power capabilities")
}

func (systemBackend) ExitWindows(ExitMode) error {
	return platform.Unsupported("exit windows")
}

func (systemBackend) RaiseHardError(uint32) error {
	return platform.Unsupported("raise hard error")
}
