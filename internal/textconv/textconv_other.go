//go:build !windows

package textconv

func systemCodePage() uint32 {
	return 1252
}
