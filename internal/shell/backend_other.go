//go:build !windows

package shell

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) ShellWindow() (uintptr, error) {
	return 0, platform.Unsupported("shell window")
}

func (systemBackend) FindChild(uintptr, string) uintptr { return 0 }

func (systemBackend) EnumTopLevel(func(uintptr) bool) error { return nil }

func (systemBackend) NextSibling(uintptr) uintptr { return 0 }

func (systemBackend) PrevSibling(uintptr) uintptr { return 0 }

func (systemBackend) SendMessage(uintptr, uint32, uintptr, uintptr) uintptr { return 0 }

func (systemBackend) IconsHidden() (bool, error) {
	return false, platform.Unsupported("shell settings")
}
