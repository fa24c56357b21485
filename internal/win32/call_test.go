//go:build windows

package win32

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerAt(t *testing.T) {
	t.Parallel()

	buf := []byte{1, 2, 3}
	p := pointerAt(uintptr(unsafe.Pointer(&buf[0])))

	assert.Equal(t, buf, unsafe.Slice((*byte)(p), len(buf)))
}

func TestGlobalBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := globalAllocBytes([]byte("clipboard payload"))
	require.NoError(t, err)
	defer GlobalFree(h)

	got, err := globalBytes(h)
	require.NoError(t, err)
	assert.Equal(t, "clipboard payload", string(got[:len("clipboard payload")]))
}
