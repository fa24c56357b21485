// Package syscolors reads, saves and resets the system color scheme.
package syscolors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/colorref"
)

// Element is a GetSysColor index (COLOR_SCROLLBAR through COLOR_MENUBAR).
type Element int

const (
	Scrollbar Element = iota
	Background
	ActiveTitle
	InactiveTitle
	Menu
	Window
	WindowFrame
	MenuText
	WindowText
	TitleText
	ActiveBorder
	InactiveBorder
	AppWorkspace
	Hilight
	HilightText
	ButtonFace
	ButtonShadow
	GrayText
	ButtonText
	InactiveTitleText
	ButtonHilight
	ButtonDkShadow
	ButtonLight
	InfoText
	InfoWindow
	ButtonAlternateFace
	HotTrackingColor
	GradientActiveTitle
	GradientInactiveTitle
	MenuHilight
	MenuBar
)

// Desktop is the same element as Background.
const Desktop = Background

// ErrInvalidElement is returned for an index outside 0..30.
var ErrInvalidElement = errors.New("invalid system color element")

type elementInfo struct {
	name  string
	value colorref.ColorRef
}

var elements = [...]elementInfo{
	Scrollbar:             {"Scrollbar", colorref.RGB(200, 200, 200)},
	Background:            {"Background", colorref.RGB(0, 0, 0)},
	ActiveTitle:           {"ActiveTitle", colorref.RGB(153, 180, 209)},
	InactiveTitle:         {"InactiveTitle", colorref.RGB(191, 205, 219)},
	Menu:                  {"Menu", colorref.RGB(240, 240, 240)},
	Window:                {"Window", colorref.RGB(255, 255, 255)},
	WindowFrame:           {"WindowFrame", colorref.RGB(100, 100, 100)},
	MenuText:              {"MenuText", colorref.RGB(0, 0, 0)},
	WindowText:            {"WindowText", colorref.RGB(0, 0, 0)},
	TitleText:             {"TitleText", colorref.RGB(0, 0, 0)},
	ActiveBorder:          {"ActiveBorder", colorref.RGB(180, 180, 180)},
	InactiveBorder:        {"InactiveBorder", colorref.RGB(244, 247, 252)},
	AppWorkspace:          {"AppWorkspace", colorref.RGB(171, 171, 171)},
	Hilight:               {"Hilight", colorref.RGB(0, 120, 215)},
	HilightText:           {"HilightText", colorref.RGB(255, 255, 255)},
	ButtonFace:            {"ButtonFace", colorref.RGB(240, 240, 240)},
	ButtonShadow:          {"ButtonShadow", colorref.RGB(160, 160, 160)},
	GrayText:              {"GrayText", colorref.RGB(109, 109, 109)},
	ButtonText:            {"ButtonText", colorref.RGB(0, 0, 0)},
	InactiveTitleText:     {"InactiveTitleText", colorref.RGB(0, 0, 0)},
	ButtonHilight:         {"ButtonHilight", colorref.RGB(255, 255, 255)},
	ButtonDkShadow:        {"ButtonDkShadow", colorref.RGB(105, 105, 105)},
	ButtonLight:           {"ButtonLight", colorref.RGB(227, 227, 227)},
	InfoText:              {"InfoText", colorref.RGB(0, 0, 0)},
	InfoWindow:            {"InfoWindow", colorref.RGB(255, 255, 255)},
	ButtonAlternateFace:   {"ButtonAlternateFace", colorref.RGB(0, 0, 0)},
	HotTrackingColor:      {"HotTrackingColor", colorref.RGB(0, 102, 204)},
	GradientActiveTitle:   {"GradientActiveTitle", colorref.RGB(185, 209, 234)},
	GradientInactiveTitle: {"GradientInactiveTitle", colorref.RGB(215, 228, 242)},
	MenuHilight:           {"MenuHilight", colorref.RGB(0, 102, 215)},
	MenuBar:               {"MenuBar", colorref.RGB(240, 240, 240)},
}

// Count is the number of system color elements.
const Count = len(elements)

func (e Element) Valid() bool {
	return e >= 0 && int(e) < Count
}

// Name returns the value name under HKCU\Control Panel\Colors.
func (e Element) Name() string {
	if !e.Valid() {
		return ""
	}

	return elements[e].name
}

// Default returns the scheme's built-in color for e.
func (e Element) Default() colorref.ColorRef {
	if !e.Valid() {
		return 0
	}

	return elements[e].value
}

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}

	return elements[e].name
}

// Elements returns all elements in index order.
func Elements() []Element {
	out := make([]Element, Count)
	for i := range out {
		out[i] = Element(i)
	}

	return out
}

// ElementByName looks up an element by its registry name, case-insensitively.
func ElementByName(name string) (Element, error) {
	for i, info := range elements {
		if strings.EqualFold(info.name, name) {
			return Element(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidElement, name)
}

// Entry pairs an element with a color.
type Entry struct {
	Element Element
	Color   colorref.ColorRef
}
