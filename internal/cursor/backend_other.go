//go:build !windows

package cursor

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) ReloadCursors() error {
	return platform.Unsupported("reload cursors")
}
