// Package window centres windows and edits their style bits.
package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winutilz/internal/logger"
)

// GetWindowLongPtr indices.
const (
	IndexStyle   int32 = -16
	IndexExStyle int32 = -20
)

var (
	ErrInvalidWindow = errors.New("invalid window handle")
	ErrNotFound      = errors.New("window not found")
)

// Backend is the native window API.
type Backend interface {
	IsWindow(hwnd uintptr) bool
	Parent(hwnd uintptr) uintptr
	WindowRect(hwnd uintptr) (Rect, error)
	ClientRect(hwnd uintptr) (Rect, error)
	// WorkArea returns the work area of the monitor nearest to hwnd.
	WorkArea(hwnd uintptr) (Rect, error)
	// Move positions hwnd without resizing, activating or reordering it.
	Move(hwnd uintptr, x, y int32) error
	Long(hwnd uintptr, index int32) (uint32, error)
	SetLong(hwnd uintptr, index int32, value uint32) error
	// FrameChanged makes the OS re-apply a style change.
	FrameChanged(hwnd uintptr) error
	Find(class, title string) (uintptr, error)
	ClassName(hwnd uintptr) string
	Text(hwnd uintptr) string
}

type Deps struct {
	Backend Backend
}

type Manager struct {
	log     logger.LoggerInterface
	backend Backend
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	return &Manager{log: log, backend: deps.Backend}
}

func (m *Manager) check(hwnd uintptr) error {
	if hwnd == 0 || !m.backend.IsWindow(hwnd) {
		return fmt.Errorf("%w: %#x", ErrInvalidWindow, hwnd)
	}

	return nil
}

// Center moves a child window to the centre of its parent's client area,
// and a top-level window to the centre of its monitor's work area.
func (m *Manager) Center(hwnd uintptr) error {
	if err := m.check(hwnd); err != nil {
		return err
	}

	rect, err := m.backend.WindowRect(hwnd)
	if err != nil {
		return fmt.Errorf("could not get window rect: %w", err)
	}

	style, err := m.backend.Long(hwnd, IndexStyle)
	if err != nil {
		return fmt.Errorf("could not get window style: %w", err)
	}

	var outer Rect
	if parent := m.backend.Parent(hwnd); style&StyleChild != 0 && parent != 0 {
		outer, err = m.backend.ClientRect(parent)
	} else {
		outer, err = m.backend.WorkArea(hwnd)
	}
	if err != nil {
		return fmt.Errorf("could not get centring area: %w", err)
	}

	pos := CenterRect(rect, outer)

	m.log.Debug("Centring window",
		slog.String("hwnd", fmt.Sprintf("%#x", hwnd)),
		slog.Int("x", int(pos.X)),
		slog.Int("y", int(pos.Y)),
	)

	return m.backend.Move(hwnd, pos.X, pos.Y)
}

// ModifyStyle sets or clears bits in GWL_STYLE.
func (m *Manager) ModifyStyle(hwnd uintptr, enable bool, bits uint32) error {
	return m.modify(hwnd, IndexStyle, enable, bits)
}

// ModifyExStyle sets or clears bits in GWL_EXSTYLE.
func (m *Manager) ModifyExStyle(hwnd uintptr, enable bool, bits uint32) error {
	return m.modify(hwnd, IndexExStyle, enable, bits)
}

func (m *Manager) modify(hwnd uintptr, index int32, enable bool, bits uint32) error {
	if err := m.check(hwnd); err != nil {
		return err
	}

	current, err := m.backend.Long(hwnd, index)
	if err != nil {
		return fmt.Errorf("could not read window style: %w", err)
	}

	next := ApplyBits(current, enable, bits)
	if next == current {
		return nil
	}

	m.log.Debug("Changing window style",
		slog.String("hwnd", fmt.Sprintf("%#x", hwnd)),
		slog.Int("index", int(index)),
		slog.String("from", fmt.Sprintf("%#08x", current)),
		slog.String("to", fmt.Sprintf("%#08x", next)),
	)

	if err := m.backend.SetLong(hwnd, index, next); err != nil {
		return fmt.Errorf("could not write window style: %w", err)
	}

	return m.backend.FrameChanged(hwnd)
}

// Find returns the first top-level window matching class and title. Empty
// strings match anything.
func (m *Manager) Find(class, title string) (uintptr, error) {
	hwnd, err := m.backend.Find(class, title)
	if err != nil {
		return 0, err
	}

	if hwnd == 0 {
		return 0, fmt.Errorf("%w: class %q title %q", ErrNotFound, class, title)
	}

	return hwnd, nil
}

// Info describes a window.
type Info struct {
	Handle  uintptr `json:"handle" yaml:"handle"`
	Class   string  `json:"class" yaml:"class"`
	Title   string  `json:"title" yaml:"title"`
	Rect    Rect    `json:"rect" yaml:"rect"`
	Style   uint32  `json:"style" yaml:"style"`
	ExStyle uint32  `json:"exStyle" yaml:"exStyle"`
}

func (m *Manager) Describe(hwnd uintptr) (Info, error) {
	if err := m.check(hwnd); err != nil {
		return Info{}, err
	}

	rect, err := m.backend.WindowRect(hwnd)
	if err != nil {
		return Info{}, err
	}

	style, err := m.backend.Long(hwnd, IndexStyle)
	if err != nil {
		return Info{}, err
	}

	exStyle, err := m.backend.Long(hwnd, IndexExStyle)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Handle:  hwnd,
		Class:   m.backend.ClassName(hwnd),
		Title:   m.backend.Text(hwnd),
		Rect:    rect,
		Style:   style,
		ExStyle: exStyle,
	}, nil
}
