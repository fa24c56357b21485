// Package cache manages the per-user directory where downloaded and
// extracted files are staged before they are handed to the OS.
package cache

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/platform"
)

// DirName is the directory created under %LOCALAPPDATA%.
const DirName = "WinUtilzCache"

// ErrInvalidName is returned for names that would escape the cache directory.
var ErrInvalidName = errors.New("invalid cache file name")

// DefaultDir returns %LOCALAPPDATA%\WinUtilzCache, or a directory under the
// system temp dir when no profile directory is known.
func DefaultDir() string {
	base := platform.LocalAppData()
	if base == "" {
		base = os.TempDir()
	}

	return filepath.Join(base, DirName)
}

// Cache is a flat directory of named files.
type Cache struct {
	dir string
}

// New returns a cache rooted at dir. An empty dir means DefaultDir.
func New(dir string) *Cache {
	if dir == "" {
		dir = DefaultDir()
	}

	return &Cache{dir: dir}
}

// Dir returns the cache directory, creating it if needed.
func (c *Cache) Dir() (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return c.dir, nil
}

// Path returns the full path of a cache file. The directory is created.
func (c *Cache) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dir, err := c.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

// StageBytes writes data to the named cache file and returns its path.
// The file is replaced atomically.
func (c *Cache) StageBytes(name string, data []byte) (string, error) {
	return c.stage(name, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// StageReader copies r into the named cache file and returns its path.
func (c *Cache) StageReader(name string, r io.Reader) (string, error) {
	return c.stage(name, func(f *os.File) error {
		_, err := io.Copy(f, r)
		return err
	})
}

func (c *Cache) stage(name string, write func(*os.File) error) (string, error) {
	path, err := c.Path(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("could not create staging file: %w", err)
	}

	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("could not write %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("could not write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("could not replace %s: %w", path, err)
	}

	return path, nil
}

// Remove deletes the named cache file. A missing file is not an error.
func (c *Cache) Remove(name string) error {
	path, err := c.Path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}
