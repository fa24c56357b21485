package syscolors

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/envpath"
	"github.com/Norgate-AV/winutilz/internal/interfaces"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/regstore"
)

const (
	// RegistryPath holds one "R G B" value per element.
	RegistryPath = `Control Panel\Colors`

	// ThemesPath and CurrentThemeValue locate the active .theme file.
	ThemesPath        = `Software\Microsoft\Windows\CurrentVersion\Themes`
	CurrentThemeValue = "CurrentTheme"
)

// Backend applies colors to the running session.
type Backend interface {
	SetSysColors(elements []int32, colors []uint32) error
	GetSysColor(element int32) (uint32, error)
}

type Deps struct {
	Registry interfaces.Registry
	Backend  Backend
}

// Manager changes system colors for the session and persists them.
type Manager struct {
	log      logger.LoggerInterface
	registry interfaces.Registry
	backend  Backend

	themeOnce sync.Once
	themePath string
	themeErr  error
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Registry == nil {
		deps.Registry = regstore.System()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	return &Manager{log: log, registry: deps.Registry, backend: deps.Backend}
}

// Save applies every entry and writes it to the registry. All elements are
// validated before anything is changed.
func (m *Manager) Save(entries ...Entry) error {
	if len(entries) == 0 {
		return errors.New("no system colors to save")
	}

	ids := make([]int32, len(entries))
	values := make([]uint32, len(entries))

	for i, e := range entries {
		if !e.Element.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidElement, int(e.Element))
		}

		ids[i] = int32(e.Element)
		values[i] = e.Color.COLORREF()
	}

	m.log.Debug("Setting system colors", slog.Int("count", len(entries)))

	if err := m.backend.SetSysColors(ids, values); err != nil {
		return fmt.Errorf("could not apply system colors: %w", err)
	}

	for _, e := range entries {
		if err := m.registry.SetString(RegistryPath, e.Element.Name(), e.Color.String()); err != nil {
			return fmt.Errorf("could not save %s: %w", e.Element, err)
		}
	}

	return nil
}

// Get returns the current session color of el.
func (m *Manager) Get(el Element) (colorref.ColorRef, error) {
	if !el.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidElement, int(el))
	}

	v, err := m.backend.GetSysColor(int32(el))
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %w", el, err)
	}

	return colorref.FromCOLORREF(v), nil
}

// ThemePath returns the expanded path of the current .theme file. It is
// read from the registry on first use and cached.
func (m *Manager) ThemePath() (string, error) {
	m.themeOnce.Do(func() {
		v, err := m.registry.GetString(ThemesPath, CurrentThemeValue)
		if err != nil {
			m.themeErr = fmt.Errorf("could not locate current theme: %w", err)
			return
		}

		m.themePath = envpath.Expand(v)
	})

	return m.themePath, m.themeErr
}

func (m *Manager) themeColors() map[Element]colorref.ColorRef {
	path, err := m.ThemePath()
	if err != nil {
		m.log.Debug("No current theme, using default colors", slog.Any("error", err))
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		m.log.Debug("Could not open theme, using default colors", slog.String("path", path), slog.Any("error", err))
		return nil
	}
	defer f.Close()

	colors, err := ParseThemeColors(f)
	if err != nil {
		m.log.Debug("Could not parse theme, using default colors", slog.String("path", path), slog.Any("error", err))
		return nil
	}

	return colors
}

// Reset restores elements to the colors of the current theme, falling back
// to the built-in defaults. No elements means all of them.
func (m *Manager) Reset(els ...Element) error {
	if len(els) == 0 {
		els = Elements()
	}

	for _, el := range els {
		if !el.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidElement, int(el))
		}
	}

	theme := m.themeColors()

	entries := make([]Entry, len(els))
	for i, el := range els {
		c, ok := theme[el]
		if !ok {
			c = el.Default()
		}

		entries[i] = Entry{Element: el, Color: c}
	}

	return m.Save(entries...)
}
