// Package platform reports the host operating system and Windows version,
// and provides the error returned by OS wrappers on unsupported platforms.
package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrUnsupported is returned by every OS wrapper when built for a platform
// other than Windows. It matches errors.ErrUnsupported.
var ErrUnsupported = fmt.Errorf("operating system not supported: %s: %w", runtime.GOOS, errors.ErrUnsupported)

// Unsupported returns ErrUnsupported annotated with the operation name.
func Unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

// Version identifies a Windows release by its major, minor and build numbers.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

// AtLeast reports whether v is the given major.minor release or newer.
func (v Version) AtLeast(major, minor uint32) bool {
	if v.Major != major {
		return v.Major > major
	}

	return v.Minor >= minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

var (
	windows7 = Version{Major: 6, Minor: 1}
	windows8 = Version{Major: 6, Minor: 2}
)

// IsWindows7OrGreater reports whether the host is Windows 7 or later.
func IsWindows7OrGreater() bool {
	v, err := OSVersion()
	return err == nil && v.AtLeast(windows7.Major, windows7.Minor)
}

// IsWindows8OrGreater reports whether the host is Windows 8 or later.
func IsWindows8OrGreater() bool {
	v, err := OSVersion()
	return err == nil && v.AtLeast(windows8.Major, windows8.Minor)
}

// LocalAppData returns %LOCALAPPDATA%, falling back to %USERPROFILE%\AppData\Local.
// It returns an empty string when neither variable is set.
func LocalAppData() string {
	if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
		return dir
	}

	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return filepath.Join(profile, "AppData", "Local")
	}

	return ""
}
