// Package capture renders windows and the desktop into BGRA images.
package capture

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/platform"
)

// ErrEmptyWindow is returned for windows with no area to capture.
var ErrEmptyWindow = errors.New("window has zero size")

// Backend performs the GDI work of a capture.
type Backend interface {
	DesktopWindow() uintptr
	WindowSize(hwnd uintptr) (width, height int, err error)
	Render(hwnd uintptr, width, height int, strategy Strategy) (*imagedata.ImageData, error)
}

type Deps struct {
	Backend Backend

	// Strategy is used by Window and Screen. The zero value is StrategyAuto.
	Strategy Strategy

	// Windows8OrGreater and CompositionEnabled describe the host. Nil
	// selects the platform package checks.
	Windows8OrGreater  func() bool
	CompositionEnabled func() bool
}

// Manager captures windows.
type Manager struct {
	log         logger.LoggerInterface
	backend     Backend
	strategy    Strategy
	windows8    func() bool
	composition func() bool
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	if deps.Windows8OrGreater == nil {
		deps.Windows8OrGreater = platform.IsWindows8OrGreater
	}

	if deps.CompositionEnabled == nil {
		deps.CompositionEnabled = platform.IsDWMCompositionEnabled
	}

	return &Manager{
		log:         log,
		backend:     deps.Backend,
		strategy:    deps.Strategy,
		windows8:    deps.Windows8OrGreater,
		composition: deps.CompositionEnabled,
	}
}

// Window captures hwnd with the configured strategy.
func (m *Manager) Window(hwnd uintptr) (*imagedata.ImageData, error) {
	return m.Capture(hwnd, m.strategy)
}

// Screen captures the desktop window.
func (m *Manager) Screen() (*imagedata.ImageData, error) {
	return m.Capture(m.Desktop(), m.strategy)
}

// Desktop returns the desktop window handle.
func (m *Manager) Desktop() uintptr {
	return m.backend.DesktopWindow()
}

// Capture renders hwnd using strategy. Before Windows 8 GDI leaves the alpha
// channel undefined, so the result is made opaque.
func (m *Manager) Capture(hwnd uintptr, strategy Strategy) (*imagedata.ImageData, error) {
	width, height, err := m.backend.WindowSize(hwnd)
	if err != nil {
		return nil, fmt.Errorf("could not get window size: %w", err)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %#x is %dx%d", ErrEmptyWindow, hwnd, width, height)
	}

	windows8 := m.windows8()
	if strategy == StrategyAuto {
		strategy = SelectStrategy(windows8, m.composition())
	}

	m.log.Debug("Capturing window",
		slog.String("hwnd", fmt.Sprintf("%#x", hwnd)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.String("strategy", strategy.String()),
	)

	img, err := m.backend.Render(hwnd, width, height, strategy)
	if err != nil {
		m.log.Error("Capture failed", slog.String("strategy", strategy.String()), slog.Any("error", err))
		return nil, fmt.Errorf("could not capture window: %w", err)
	}

	if !windows8 {
		img.ForceOpaque()
	}

	return img, nil
}
