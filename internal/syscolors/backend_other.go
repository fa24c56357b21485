//go:build !windows

package syscolors

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) SetSysColors([]int32, []uint32) error {
	return platform.Unsupported("set system colors")
}

func (systemBackend) GetSysColor(int32) (uint32, error) {
	return 0, platform.Unsupported("get system color")
}
