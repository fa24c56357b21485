//go:build windows

package power

import (
	"fmt"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

// monitorPowerOff is the SC_MONITORPOWER argument that turns displays off.
const monitorPowerOff = 2

type systemBackend struct{}

func (systemBackend) MonitorOff() error {
	win32.SendMessage(win32.HWND_TOPMOST, win32.WM_SYSCOMMAND, win32.SC_MONITORPOWER, monitorPowerOff)
	return nil
}

func (systemBackend) LockWorkStation() error {
	return win32.LockWorkStation()
}

func (systemBackend) Sleep() error {
	return win32.NtInitiatePowerAction(
		win32.PowerActionSleep,
		win32.PowerSystemSleeping1,
		win32.POWER_ACTION_QUERY_ALLOWED|win32.POWER_ACTION_UI_ALLOWED,
		false,
	)
}

func (systemBackend) SoftOffSupported() (bool, error) {
	caps, err := win32.PowerCapabilities()
	if err != nil {
		return false, err
	}

	return caps.SystemS5 != 0, nil
}

func (systemBackend) ExitWindows(mode ExitMode) error {
	var flags uint32

	switch mode {
	case ExitLogOff:
		flags = win32.EWX_LOGOFF
	case ExitShutdown:
		flags = win32.EWX_SHUTDOWN
	case ExitPowerOff:
		flags = win32.EWX_POWEROFF
	case ExitReboot:
		flags = win32.EWX_REBOOT
	default:
		return fmt.Errorf("unknown exit mode %s", mode)
	}

	return win32.ExitWindowsEx(flags, win32.SHTDN_REASON_MAJOR_OTHER)
}

func (systemBackend) RaiseHardError(status uint32) error {
	_, err := win32.NtRaiseHardError(status, win32.OptionShutdownSystem)
	return err
}
