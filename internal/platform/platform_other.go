//go:build !windows

package platform

// Supported reports whether the OS wrappers are available on this build.
const Supported = false

// OSVersion always fails outside Windows.
func OSVersion() (Version, error) {
	return Version{}, Unsupported("OSVersion")
}

// IsDWMCompositionEnabled is always false outside Windows.
func IsDWMCompositionEnabled() bool {
	return false
}
