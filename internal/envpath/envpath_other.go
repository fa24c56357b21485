//go:build !windows

package envpath

import "os"

// Expand expands %NAME% references from the process environment.
func Expand(s string) string {
	return ExpandWith(s, os.LookupEnv)
}
