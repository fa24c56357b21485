// Package cursor replaces the per-user system cursors.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Icon selects one of the cursor roles listed under HKCU\Control Panel\Cursors.
type Icon int

const (
	AppStarting Icon = iota
	Arrow
	Crosshair
	Hand
	Help
	IBeam
	No
	NWPen
	Person
	Pin
	SizeAll
	SizeNESW
	SizeNS
	SizeNWSE
	SizeWE
	UpArrow
	Wait
)

// ErrInvalidIcon is returned for an Icon outside the defined range.
var ErrInvalidIcon = errors.New("invalid cursor icon")

var iconNames = [...]string{
	AppStarting: "AppStarting",
	Arrow:       "Arrow",
	Crosshair:   "Crosshair",
	Hand:        "Hand",
	Help:        "Help",
	IBeam:       "IBeam",
	No:          "No",
	NWPen:       "NWPen",
	Person:      "Person",
	Pin:         "Pin",
	SizeAll:     "SizeAll",
	SizeNESW:    "SizeNESW",
	SizeNS:      "SizeNS",
	SizeNWSE:    "SizeNWSE",
	SizeWE:      "SizeWE",
	UpArrow:     "UpArrow",
	Wait:        "Wait",
}

// Valid reports whether i names a cursor role.
func (i Icon) Valid() bool {
	return i >= 0 && int(i) < len(iconNames)
}

// String returns the registry value name.
func (i Icon) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Icon(%d)", int(i))
	}

	return iconNames[i]
}

// Icons returns every icon in registry order.
func Icons() []Icon {
	out := make([]Icon, len(iconNames))
	for i := range out {
		out[i] = Icon(i)
	}

	return out
}

// ParseIcon matches a registry value name case-insensitively.
func ParseIcon(s string) (Icon, error) {
	for i, name := range iconNames {
		if strings.EqualFold(name, s) {
			return Icon(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidIcon, s)
}

// FileType is the container format of a cursor file.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeCUR
	FileTypeANI
)

func (t FileType) String() string {
	switch t {
	case FileTypeCUR:
		return "cur"
	case FileTypeANI:
		return "ani"
	default:
		return "unknown"
	}
}

// HeaderSize is how many leading bytes DetectFileType needs.
const HeaderSize = 12

// DetectFileType classifies a file from its first HeaderSize bytes. Shorter
// input is always FileTypeUnknown.
func DetectFileType(header []byte) FileType {
	if len(header) < HeaderSize {
		return FileTypeUnknown
	}

	reserved := binary.LittleEndian.Uint16(header[0:])
	kind := binary.LittleEndian.Uint16(header[2:])
	count := binary.LittleEndian.Uint16(header[4:])

	if reserved == 0 && kind == 2 && count >= 1 {
		return FileTypeCUR
	}

	if string(header[0:4]) == "RIFF" && string(header[8:12]) == "ACON" {
		return FileTypeANI
	}

	return FileTypeUnknown
}
