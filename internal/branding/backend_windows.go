//go:build windows

package branding

import "github.com/Norgate-AV/winutilz/internal/win32"

type systemBackend struct{}

func (systemBackend) FormatString(format string) (string, error) {
	return win32.BrandingFormatString(format)
}
