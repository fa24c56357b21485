//go:build windows

package win32

import (
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestSHELLEXECUTEINFO_Size(t *testing.T) {
	t.Parallel()

	want := uintptr(60)
	if unsafe.Sizeof(uintptr(0)) == 8 {
		want = 112
	}

	assert.Equal(t, want, unsafe.Sizeof(SHELLEXECUTEINFO{}))
}

func TestShellExecuteEx_MissingFile(t *testing.T) {
	t.Parallel()

	verb, err := windows.UTF16PtrFromString("open")
	require.NoError(t, err)

	file, err := windows.UTF16PtrFromString(filepath.Join(t.TempDir(), "missing.exe"))
	require.NoError(t, err)

	sei := SHELLEXECUTEINFO{
		FMask:  SEE_MASK_NOCLOSEPROCESS | SEE_MASK_FLAG_NO_UI,
		LpVerb: verb,
		LpFile: file,
		NShow:  windows.SW_HIDE,
	}

	assert.Error(t, ShellExecuteEx(&sei))
	assert.Equal(t, uint32(unsafe.Sizeof(sei)), sei.CbSize)
	assert.Zero(t, sei.HProcess)
}
