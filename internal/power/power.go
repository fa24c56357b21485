// Package power turns the display off, locks the session and requests
// sleep, shutdown, reboot, log off or a bug check.
package power

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/process"
)

// DefaultBugCheckStatus is STATUS_SYSTEM_PROCESS_TERMINATED.
const DefaultBugCheckStatus uint32 = 0xC000021A

// ExitMode selects the ExitWindowsEx operation.
type ExitMode int

const (
	ExitLogOff ExitMode = iota
	ExitShutdown
	ExitPowerOff
	ExitReboot
)

func (e ExitMode) String() string {
	switch e {
	case ExitLogOff:
		return "logoff"
	case ExitShutdown:
		return "shutdown"
	case ExitPowerOff:
		return "poweroff"
	case ExitReboot:
		return "reboot"
	default:
		return fmt.Sprintf("ExitMode(%d)", int(e))
	}
}

// Backend is the native power API.
type Backend interface {
	MonitorOff() error
	LockWorkStation() error
	Sleep() error
	// SoftOffSupported reports the S5 capability of the system.
	SoftOffSupported() (bool, error)
	ExitWindows(mode ExitMode) error
	RaiseHardError(status uint32) error
}

// Privileges enables privileges on the current process.
type Privileges interface {
	EnsurePrivilege(p process.Privilege)
}

type Deps struct {
	Backend    Backend
	Privileges Privileges
}

type Manager struct {
	log        logger.LoggerInterface
	backend    Backend
	privileges Privileges
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	if deps.Privileges == nil {
		deps.Privileges = process.NewManager(log, process.Deps{})
	}

	return &Manager{log: log, backend: deps.Backend, privileges: deps.Privileges}
}

// ScreenOff powers the display down.
func (m *Manager) ScreenOff() error {
	m.log.Debug("Turning screen off")
	return wrap("turn screen off", m.backend.MonitorOff())
}

func (m *Manager) Lock() error {
	m.log.Debug("Locking workstation")
	return wrap("lock workstation", m.backend.LockWorkStation())
}

func (m *Manager) Sleep() error {
	m.privileges.EnsurePrivilege(process.SeShutdown)
	m.log.Debug("Entering sleep")
	return wrap("sleep", m.backend.Sleep())
}

// Shutdown powers off when the system supports the S5 soft-off state and
// otherwise halts.
func (m *Manager) Shutdown() error {
	m.privileges.EnsurePrivilege(process.SeShutdown)

	s5, err := m.backend.SoftOffSupported()
	if err != nil {
		return fmt.Errorf("could not query power capabilities: %w", err)
	}

	mode := ExitShutdown
	if s5 {
		mode = ExitPowerOff
	}

	m.log.Debug("Shutting down", slog.String("mode", mode.String()))

	return wrap("shut down", m.backend.ExitWindows(mode))
}

func (m *Manager) Reboot() error {
	m.privileges.EnsurePrivilege(process.SeShutdown)
	m.log.Debug("Rebooting")
	return wrap("reboot", m.backend.ExitWindows(ExitReboot))
}

func (m *Manager) LogOff() error {
	m.log.Debug("Logging off")
	return wrap("log off", m.backend.ExitWindows(ExitLogOff))
}

// RaiseBlueScreen raises a shutdown hard error with status, or
// DefaultBugCheckStatus when status is zero.
func (m *Manager) RaiseBlueScreen(status uint32) error {
	if status == 0 {
		status = DefaultBugCheckStatus
	}

	m.privileges.EnsurePrivilege(process.SeShutdown)
	m.log.Warn("Raising hard error", slog.String("status", fmt.Sprintf("%#x", status)))

	return wrap("raise hard error", m.backend.RaiseHardError(status))
}

// Do runs a.
func (m *Manager) Do(a Action) error {
	switch a {
	case ActionScreenOff:
		return m.ScreenOff()
	case ActionLock:
		return m.Lock()
	case ActionSleep:
		return m.Sleep()
	case ActionShutdown:
		return m.Shutdown()
	case ActionReboot:
		return m.Reboot()
	case ActionLogOff:
		return m.LogOff()
	case ActionBlueScreen:
		return m.RaiseBlueScreen(0)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("could not %s: %w", op, err)
	}

	return nil
}

// Action names a Manager operation for the command line.
type Action int

const (
	ActionScreenOff Action = iota
	ActionLock
	ActionSleep
	ActionShutdown
	ActionReboot
	ActionLogOff
	ActionBlueScreen
)

var ErrInvalidAction = errors.New("invalid power action")

var actionNames = []string{
	ActionScreenOff:  "screen-off",
	ActionLock:       "lock",
	ActionSleep:      "sleep",
	ActionShutdown:   "shutdown",
	ActionReboot:     "reboot",
	ActionLogOff:     "logoff",
	ActionBlueScreen: "bsod",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// Actions lists every action.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}

	return out
}

// ParseAction accepts the names printed by String, ignoring case, dashes
// and underscores.
func ParseAction(s string) (Action, error) {
	key := normaliseAction(s)
	for i, name := range actionNames {
		if normaliseAction(name) == key {
			return Action(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

func normaliseAction(s string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
