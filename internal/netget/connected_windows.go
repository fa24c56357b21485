//go:build windows

package netget

import (
	"context"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

func systemConnected(context.Context) bool {
	return win32.InternetGetConnectedState()
}
