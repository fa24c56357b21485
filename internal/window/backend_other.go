//go:build !windows

package window

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) IsWindow(uintptr) bool { return false }

func (systemBackend) Parent(uintptr) uintptr { return 0 }

func (systemBackend) WindowRect(uintptr) (Rect, error) {
	return Rect{}, platform.Unsupported("window rect")
}

func (systemBackend) ClientRect(uintptr) (Rect, error) {
	return Rect{}, platform.Unsupported("client rect")
}

func (systemBackend) WorkArea(uintptr) (Rect, error) {
	return Rect{}, platform.Unsupported("monitor work area")
}

func (systemBackend) Move(uintptr, int32, int32) error {
	return platform.Unsupported("move window")
}

func (systemBackend) Long(uintptr, int32) (uint32, error) {
	return 0, platform.Unsupported("read window style")
}

func (systemBackend) SetLong(uintptr, int32, uint32) error {
	return platform.Unsupported("write window style")
}

func (systemBackend) FrameChanged(uintptr) error {
	return platform.Unsupported("apply window frame")
}

func (systemBackend) Find(string, string) (uintptr, error) {
	return 0, platform.Unsupported("find window")
}

func (systemBackend) ClassName(uintptr) string { return "" }

func (systemBackend) Text(uintptr) string { return "" }
