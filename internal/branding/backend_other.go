//go:build !windows

package branding

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) FormatString(string) (string, error) {
	return "", platform.Unsupported("branding")
}
