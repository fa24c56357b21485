package envpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winutilz/internal/envpath"
)

func lookupFrom(vars map[string]string) envpath.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func TestExpandWith(t *testing.T) {
	t.Parallel()

	lookup := lookupFrom(map[string]string{
		"LOCALAPPDATA": `C:\Users\alex\AppData\Local`,
		"SystemRoot":   `C:\Windows`,
		"A":            "1",
		"B":            "2",
	})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no reference", `C:\cursors\arrow.cur`, `C:\cursors\arrow.cur`},
		{"single reference", `%LOCALAPPDATA%\WinUtilzCache`, `C:\Users\alex\AppData\Local\WinUtilzCache`},
		{"reference in middle", `x%SystemRoot%y`, `xC:\Windowsy`},
		{"adjacent references", `%A%%B%`, `12`},
		{"unknown kept", `%NOPE%\file`, `%NOPE%\file`},
		{"unknown then known", `%NOPE%A%`, `%NOPE1`},
		{"double percent", `100%%`, `100%%`},
		{"lone percent", `50% off`, `50% off`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, envpath.ExpandWith(tt.input, lookup))
		})
	}
}

func TestExpand_ProcessEnvironment(t *testing.T) {
	t.Setenv("WINUTILZ_TEST_DIR", "cachebase")

	assert.Equal(t, "cachebase/x", envpath.Expand("%WINUTILZ_TEST_DIR%/x"))
	assert.Equal(t, "plain", envpath.Expand("plain"))
}
