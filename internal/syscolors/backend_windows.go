//go:build windows

package syscolors

import "github.com/Norgate-AV/winutilz/internal/win32"

type systemBackend struct{}

func (systemBackend) SetSysColors(elements []int32, colors []uint32) error {
	return win32.SetSysColors(elements, colors)
}

func (systemBackend) GetSysColor(element int32) (uint32, error) {
	return win32.GetSysColor(element), nil
}
