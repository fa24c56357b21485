//go:build windows

package textconv

import "github.com/Norgate-AV/winutilz/internal/win32"

func systemCodePage() uint32 {
	return win32.GetACP()
}
