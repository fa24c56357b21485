//go:build !windows

package wallpaper

import "github.com/Norgate-AV/winutilz/internal/platform"

type systemBackend struct{}

func (systemBackend) SetWallpaper(string) error {
	return platform.Unsupported("set wallpaper")
}

func (systemBackend) Wallpaper() (string, error) {
	return "", platform.Unsupported("get wallpaper")
}
