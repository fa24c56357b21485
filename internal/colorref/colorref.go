// Package colorref implements the packed 32-bit RGBA color used across the
// wrappers, laid out like a GDI COLORREF with alpha in the high byte.
package colorref

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ColorRef packs red, green, blue and alpha as r | g<<8 | b<<16 | a<<24.
type ColorRef uint32

// RGBA packs the four components.
func RGBA(r, g, b, a uint8) ColorRef {
	return ColorRef(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) ColorRef {
	return RGBA(r, g, b, 0xFF)
}

// FromCOLORREF converts a GDI COLORREF (alpha byte unused) to an opaque ColorRef.
func FromCOLORREF(v uint32) ColorRef {
	return ColorRef(v&0x00FFFFFF) | 0xFF000000
}

func (c ColorRef) R() uint8 { return uint8(c) }
func (c ColorRef) G() uint8 { return uint8(c >> 8) }
func (c ColorRef) B() uint8 { return uint8(c >> 16) }
func (c ColorRef) A() uint8 { return uint8(c >> 24) }

// COLORREF returns the GDI value with the alpha byte cleared.
func (c ColorRef) COLORREF() uint32 {
	return uint32(c) & 0x00FFFFFF
}

// NRGBA converts to a non-premultiplied Go color.
func (c ColorRef) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromColor converts any Go color.
func FromColor(c color.Color) ColorRef {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// String formats the color the way the registry stores it: "R G B".
func (c ColorRef) String() string {
	return fmt.Sprintf("%d %d %d", c.R(), c.G(), c.B())
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not opaque.
func (c ColorRef) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// Parse reads a registry color string such as "0 120 215".
func Parse(s string) (ColorRef, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, fmt.Errorf("%w: %q: want \"R G B\"", ErrInvalidColor, s)
	}

	var rgb [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}

		rgb[i] = uint8(v)
	}

	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

// ParseHex reads #rrggbb or #rrggbbaa; the leading '#' is optional.
func ParseHex(s string) (ColorRef, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("%w: %q: want #rrggbb or #rrggbbaa", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	if len(h) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ParseAny accepts either the registry form or the hex form.
func ParseAny(s string) (ColorRef, error) {
	if strings.Contains(strings.TrimSpace(s), " ") {
		return Parse(s)
	}

	return ParseHex(s)
}
