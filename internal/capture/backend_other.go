//go:build !windows

package capture

import (
	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/platform"
)

type systemBackend struct{}

func (systemBackend) DesktopWindow() uintptr {
	return 0
}

func (systemBackend) WindowSize(uintptr) (int, int, error) {
	return 0, 0, platform.Unsupported("capture")
}

func (systemBackend) Render(uintptr, int, int, Strategy) (*imagedata.ImageData, error) {
	return nil, platform.Unsupported("capture")
}
