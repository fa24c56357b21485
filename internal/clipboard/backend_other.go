//go:build !windows

package clipboard

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) OwnerWindow() (uintptr, func(), error) {
	return 0, nil, platform.Unsupported("clipboard")
}

func (systemBackend) Open(uintptr) error {
	return platform.Unsupported("open clipboard")
}

func (systemBackend) Close() error {
	return nil
}

func (systemBackend) Empty() error {
	return platform.Unsupported("empty clipboard")
}

func (systemBackend) IsFormatAvailable(uint32) bool {
	return false
}

func (systemBackend) GetData(uint32) ([]byte, error) {
	return nil, platform.Unsupported("read clipboard")
}

func (systemBackend) SetData(uint32, []byte) error {
	return platform.Unsupported("write clipboard")
}
