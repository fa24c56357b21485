package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/cache"
)

func TestDefaultDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "WinUtilzCache"), cache.DefaultDir())
}

func TestDefaultDir_FallsBackToTemp(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", "")

	assert.Equal(t, filepath.Join(os.TempDir(), "WinUtilzCache"), cache.DefaultDir())
}

func TestPath_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := cache.New(dir)

	path, err := c.Path("Arrow")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Arrow"), path)
	assert.DirExists(t, dir)
}

func TestPath_RejectsEscapes(t *testing.T) {
	t.Parallel()

	c := cache.New(t.TempDir())

	for _, name := range []string{"", ".", "..", "../x", `a\b`, "a/b", "C:x"} {
		_, err := c.Path(name)
		assert.ErrorIs(t, err, cache.ErrInvalidName, name)
	}
}

func TestStageBytes_ReplacesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := cache.New(dir)

	path, err := c.StageBytes("Wallpaper", []byte("first"))
	require.NoError(t, err)

	path2, err := c.StageBytes("Wallpaper", []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no staging files left behind")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestStageReader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := cache.New(dir)

	path, err := c.StageReader("Hand", strings.NewReader("cursor bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "cursor bytes", string(data))

	_, err = c.StageReader("Broken", failingReader{})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "Broken"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := cache.New(t.TempDir())

	path, err := c.StageBytes("Arrow", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, c.Remove("Arrow"))
	assert.NoFileExists(t, path)
	assert.NoError(t, c.Remove("Arrow"), "missing file is not an error")
}
