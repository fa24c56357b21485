// Package shell drives the desktop folder view: refresh, icon arrangement,
// grid snapping and icon visibility.
package shell

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/platform"
)

// Window classes of the desktop folder view.
const (
	ClassDefView  = "SHELLDLL_DefView"
	ClassListView = "SysListView32"
)

// Undocumented WM_COMMAND ids handled by the DefView window procedure.
const (
	CommandRefresh     uint32 = 0x7103
	CommandHardRefresh uint32 = 0x7104
)

const (
	wmCommand                   uint32  = 0x0111
	lvmGetExtendedListViewStyle uint32  = 0x1000 + 55
	lvsExSnapToGrid             uintptr = 0x00080000
)

var ErrNotFound = errors.New("desktop folder view not found")

// Arrangement is a toggleable desktop view option.
type Arrangement int

const (
	AutoArrange Arrangement = iota
	AlignToGrid
	ShowIcons
	AutoGrid
)

var ErrInvalidArrangement = errors.New("invalid icon arrangement")

var (
	arrangementNames = [...]string{"auto-arrange", "align-to-grid", "show-icons", "auto-grid"}
	commandsWin7     = [...]uint32{0x7071, 0x7072, 0x7073, 0x7074}
	commandsXP       = [...]uint32{0x7051, 0x7052, 0x7053, 0x7054}
)

func (a Arrangement) Valid() bool {
	return a >= AutoArrange && a <= AutoGrid
}

func (a Arrangement) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Arrangement(%d)", int(a))
	}

	return arrangementNames[a]
}

// CommandID returns the DefView command toggling a on Windows 7 and later,
// or on earlier shells.
func (a Arrangement) CommandID(windows7OrGreater bool) (uint32, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidArrangement, int(a))
	}

	if windows7OrGreater {
		return commandsWin7[a], nil
	}

	return commandsXP[a], nil
}

func ParseArrangement(s string) (Arrangement, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range arrangementNames {
		if name == key || strings.ReplaceAll(name, "-", "") == key {
			return Arrangement(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidArrangement, s)
}

// Backend is the window API the desktop lookup runs on.
type Backend interface {
	ShellWindow() (uintptr, error)
	FindChild(parent uintptr, class string) uintptr
	// EnumTopLevel calls fn for each top-level window until fn returns false.
	EnumTopLevel(fn func(hwnd uintptr) bool) error
	NextSibling(hwnd uintptr) uintptr
	PrevSibling(hwnd uintptr) uintptr
	SendMessage(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr
	IconsHidden() (bool, error)
}

type Deps struct {
	Backend Backend

	// Windows7OrGreater selects the arrangement command table. Nil selects
	// platform.IsWindows7OrGreater.
	Windows7OrGreater func() bool
}

type Manager struct {
	log      logger.LoggerInterface
	backend  Backend
	windows7 func() bool
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	if deps.Windows7OrGreater == nil {
		deps.Windows7OrGreater = platform.IsWindows7OrGreater
	}

	return &Manager{log: log, backend: deps.Backend, windows7: deps.Windows7OrGreater}
}

// DefView returns the SHELLDLL_DefView window hosting the desktop icons. It
// is a child of the shell window, or of a WorkerW window once the wallpaper
// slideshow or Win+Tab has re-parented it.
func (m *Manager) DefView() (uintptr, error) {
	shell, err := m.backend.ShellWindow()
	if err != nil {
		return 0, err
	}

	if shell == 0 {
		return 0, fmt.Errorf("%w: no shell window", ErrNotFound)
	}

	if dv := m.backend.FindChild(shell, ClassDefView); dv != 0 {
		return dv, nil
	}

	var found uintptr
	err = m.backend.EnumTopLevel(func(hwnd uintptr) bool {
		dv := m.backend.FindChild(hwnd, ClassDefView)
		if dv == 0 {
			return true
		}

		if m.backend.NextSibling(dv) != 0 || m.backend.PrevSibling(dv) != 0 {
			return true
		}

		found = dv
		return false
	})
	if err != nil {
		return 0, fmt.Errorf("could not enumerate windows: %w", err)
	}

	if found == 0 {
		return 0, ErrNotFound
	}

	m.log.Trace("Found re-parented DefView", slog.String("hwnd", fmt.Sprintf("%#x", found)))

	return found, nil
}

// ListView returns the list view holding the desktop icons.
func (m *Manager) ListView() (uintptr, error) {
	dv, err := m.DefView()
	if err != nil {
		return 0, err
	}

	lv := m.backend.FindChild(dv, ClassListView)
	if lv == 0 {
		return 0, fmt.Errorf("%w: no %s", ErrNotFound, ClassListView)
	}

	return lv, nil
}

func (m *Manager) sendCommand(id uint32) error {
	dv, err := m.DefView()
	if err != nil {
		return err
	}

	m.log.Debug("Sending desktop command", slog.String("id", fmt.Sprintf("%#x", id)))

	m.backend.SendMessage(dv, wmCommand, uintptr(id), 0)

	return nil
}

// Refresh redraws the desktop. A hard refresh also re-reads the folder.
func (m *Manager) Refresh(hard bool) error {
	if hard {
		return m.sendCommand(CommandHardRefresh)
	}

	return m.sendCommand(CommandRefresh)
}

// ToggleArrangement flips a.
func (m *Manager) ToggleArrangement(a Arrangement) error {
	id, err := a.CommandID(m.windows7())
	if err != nil {
		return err
	}

	return m.sendCommand(id)
}

// GridAligned reports whether desktop icons snap to the grid.
func (m *Manager) GridAligned() (bool, error) {
	lv, err := m.ListView()
	if err != nil {
		return false, err
	}

	style := m.backend.SendMessage(lv, lvmGetExtendedListViewStyle, 0, 0)

	return style&lvsExSnapToGrid != 0, nil
}

func (m *Manager) SetGridAligned(enable bool) error {
	aligned, err := m.GridAligned()
	if err != nil {
		return err
	}

	if aligned == enable {
		return nil
	}

	return m.ToggleArrangement(AlignToGrid)
}

// IconsVisible reports the inverse of the SSF_HIDEICONS shell setting.
func (m *Manager) IconsVisible() (bool, error) {
	hidden, err := m.backend.IconsHidden()
	if err != nil {
		return false, err
	}

	return !hidden, nil
}

func (m *Manager) SetIconsVisible(visible bool) error {
	current, err := m.IconsVisible()
	if err != nil {
		return err
	}

	if current == visible {
		return nil
	}

	return m.ToggleArrangement(ShowIcons)
}
