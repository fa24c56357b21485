package window

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Window styles (GWL_STYLE).
const (
	StyleChild       uint32 = 0x40000000
	StyleCaption     uint32 = 0x00C00000
	StyleBorder      uint32 = 0x00800000
	StyleSysMenu     uint32 = 0x00080000
	StyleThickFrame  uint32 = 0x00040000
	StyleMinimizeBox uint32 = 0x00020000
	StyleMaximizeBox uint32 = 0x00010000
	StyleVisible     uint32 = 0x10000000
	StyleDisabled    uint32 = 0x08000000
)

// Extended window styles (GWL_EXSTYLE).
const (
	ExStyleTopmost     uint32 = 0x00000008
	ExStyleTransparent uint32 = 0x00000020
	ExStyleToolWindow  uint32 = 0x00000080
	ExStyleAppWindow   uint32 = 0x00040000
	ExStyleLayered     uint32 = 0x00080000
	ExStyleNoActivate  uint32 = 0x08000000
)

var ErrUnknownStyle = errors.New("unknown window style")

// StyleBit is a named style flag.
type StyleBit struct {
	Name     string
	Bits     uint32
	Extended bool
}

var styleBits = map[string]StyleBit{
	"child":       {"child", StyleChild, false},
	"caption":     {"caption", StyleCaption, false},
	"border":      {"border", StyleBorder, false},
	"sysmenu":     {"sysmenu", StyleSysMenu, false},
	"thickframe":  {"thickframe", StyleThickFrame, false},
	"minimizebox": {"minimizebox", StyleMinimizeBox, false},
	"maximizebox": {"maximizebox", StyleMaximizeBox, false},
	"visible":     {"visible", StyleVisible, false},
	"disabled":    {"disabled", StyleDisabled, false},
	"topmost":     {"topmost", ExStyleTopmost, true},
	"transparent": {"transparent", ExStyleTransparent, true},
	"toolwindow":  {"toolwindow", ExStyleToolWindow, true},
	"appwindow":   {"appwindow", ExStyleAppWindow, true},
	"layered":     {"layered", ExStyleLayered, true},
	"noactivate":  {"noactivate", ExStyleNoActivate, true},
}

// ParseStyleBit looks up a style by name, with or without a WS_ or WS_EX_
// prefix, ignoring case and underscores.
func ParseStyleBit(s string) (StyleBit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ws_ex_")
	name = strings.TrimPrefix(name, "ws_")
	name = strings.ReplaceAll(name, "_", "")

	if bit, ok := styleBits[name]; ok {
		return bit, nil
	}

	return StyleBit{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// StyleNames lists the names accepted by ParseStyleBit.
func StyleNames() []string {
	names := make([]string, 0, len(styleBits))
	for name := range styleBits {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
