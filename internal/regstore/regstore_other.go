//go:build !windows

package regstore

import "github.com/Norgate-AV/winutilz/internal/platform"

// unsupported fails every call; there is no registry off Windows.
type unsupported struct{}

// System returns a Store whose calls fail with platform.ErrUnsupported.
func System() Store {
	return unsupported{}
}

func (unsupported) GetString(string, string) (string, error) {
	return "", platform.Unsupported("registry read")
}

func (unsupported) SetString(string, string, string) error {
	return platform.Unsupported("registry write")
}

func (unsupported) SetExpandString(string, string, string) error {
	return platform.Unsupported("registry write")
}

func (unsupported) GetInteger(string, string) (uint64, error) {
	return 0, platform.Unsupported("registry read")
}

func (unsupported) SetDWord(string, string, uint32) error {
	return platform.Unsupported("registry write")
}
