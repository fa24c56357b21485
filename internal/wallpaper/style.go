// Package wallpaper sets the desktop wallpaper, its placement style and the
// desktop background color.
package wallpaper

import (
	"errors"
	"fmt"
	"strings"
)

// Style is the placement of the wallpaper on the desktop.
type Style int

const (
	Center Style = iota
	Tile
	Stretch
	KeepAspect
	CropToFit
	Span
)

// ErrInvalidStyle is returned for an unknown Style or registry pair.
var ErrInvalidStyle = errors.New("invalid wallpaper style")

type styleValues struct {
	name  string
	style string // WallpaperStyle
	tile  string // TileWallpaper
}

var styles = [...]styleValues{
	Center:     {"center", "0", "0"},
	Tile:       {"tile", "0", "1"},
	Stretch:    {"stretch", "2", "0"},
	KeepAspect: {"fit", "6", "0"},
	CropToFit:  {"fill", "10", "0"},
	Span:       {"span", "22", "0"},
}

func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styles)
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}

	return styles[s].name
}

// RegistryValues returns the WallpaperStyle and TileWallpaper strings.
func (s Style) RegistryValues() (style, tile string, err error) {
	if !s.Valid() {
		return "", "", fmt.Errorf("%w: %d", ErrInvalidStyle, int(s))
	}

	return styles[s].style, styles[s].tile, nil
}

// Styles returns every style.
func Styles() []Style {
	out := make([]Style, len(styles))
	for i := range out {
		out[i] = Style(i)
	}

	return out
}

// ParseStyle accepts the style names used by the Settings app (fill, fit,
// stretch, tile, center, span) plus keepaspect and croptofit.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "keepaspect":
		return KeepAspect, nil
	case "croptofit":
		return CropToFit, nil
	}

	for i, v := range styles {
		if strings.EqualFold(v.name, s) {
			return Style(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// StyleFromRegistry maps a WallpaperStyle/TileWallpaper pair back to a Style.
func StyleFromRegistry(style, tile string) (Style, error) {
	style = strings.TrimSpace(style)
	tile = strings.TrimSpace(tile)
	if tile == "" {
		tile = "0"
	}

	for i, v := range styles {
		if v.style == style && v.tile == tile {
			return Style(i), nil
		}
	}

	return 0, fmt.Errorf("%w: WallpaperStyle=%q TileWallpaper=%q", ErrInvalidStyle, style, tile)
}
