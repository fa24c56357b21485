//go:build !windows

package resource

import "github.com/Norgate-AV/winutilz/internal/platform"

// Module is unavailable off Windows; every lookup fails.
type Module struct{}

func Self() *Module {
	return &Module{}
}

func OpenModule(string) (*Module, error) {
	return nil, platform.Unsupported("load module")
}

func (m *Module) Close() error {
	return nil
}

func (m *Module) Exists(ID, ID) bool {
	return false
}

func (m *Module) Load(ID, ID) ([]byte, error) {
	return nil, platform.Unsupported("load resource")
}
