//go:build windows

package envpath

import (
	"os"

	"golang.org/x/sys/windows"
)

// Expand expands %NAME% references using ExpandEnvironmentStrings.
// Variable names are case-insensitive.
func Expand(s string) string {
	src, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return ExpandWith(s, os.LookupEnv)
	}

	size := uint32(len(s) + 1)
	for {
		buf := make([]uint16, size)

		n, err := windows.ExpandEnvironmentStrings(src, &buf[0], size)
		if err != nil || n == 0 {
			return ExpandWith(s, os.LookupEnv)
		}

		if n <= size {
			return windows.UTF16ToString(buf[:n])
		}

		size = n
	}
}
