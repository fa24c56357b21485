// Package process adjusts privileges of the current process and suspends,
// resumes, terminates, injects into and launches other processes.
package process

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/winutilz/internal/logger"
)

// Access rights passed to Backend.OpenProcess.
const (
	AccessTerminate     uint32 = 0x0001
	AccessSuspendResume uint32 = 0x0800
	AccessAll           uint32 = 0x001FFFFF
)

// ExitCodeAborted is ERROR_PROCESS_ABORTED, the exit code given to killed
// processes.
const ExitCodeAborted uint32 = 1067

var (
	// ErrNotFound is returned when the current process owns no top-level window.
	ErrNotFound = errors.New("no top-level window for current process")

	ErrEmptyCommand = errors.New("empty command line")
)

// Handle is an open process handle.
type Handle uintptr

// RunOptions controls RunCommand.
type RunOptions struct {
	// Silent hides the console window of the child.
	Silent bool

	// Dir is the working directory of the child. Empty inherits ours.
	Dir string
}

// Backend is the native process API.
type Backend interface {
	AdjustPrivilege(p Privilege, enable bool) (previous bool, err error)
	OpenProcess(pid, access uint32) (Handle, error)
	CloseHandle(h Handle) error
	Suspend(h Handle) error
	Resume(h Handle) error
	Terminate(h Handle, exitCode uint32) error
	Remote(h Handle) Remote
	Run(ctx context.Context, cmdline string, opts RunOptions) (exitCode uint32, err error)
	RunElevated(file, args, dir string) (pid uint32, err error)
	Elevated() (bool, error)
	CurrentProcessWindow() uintptr
}

type Deps struct {
	Backend Backend
}

// Manager wraps Backend with privilege handling and logging.
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

// SetPrivilege enables or disables p on the current process token and
// returns whether it was enabled before.
func (m *Manager) SetPrivilege(p Privilege, enable bool) (bool, error) {
	if !p.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidPrivilege, uint32(p))
	}

	m.log.Debug("Adjusting privilege", slog.String("privilege", p.String()), slog.Bool("enable", enable))

	previous, err := m.backend.AdjustPrivilege(p, enable)
	if err != nil {
		return false, fmt.Errorf("could not adjust %s: %w", p, err)
	}

	return previous, nil
}

// EnsurePrivilege enables p and logs a warning when that fails. The
// operation that needs it is attempted regardless and reports its own error.
func (m *Manager) EnsurePrivilege(p Privilege) {
	if _, err := m.SetPrivilege(p, true); err != nil {
		m.log.Warn("Could not enable privilege", slog.String("privilege", p.String()), slog.Any("error", err))
	}
}

func (m *Manager) Suspend(h Handle) error {
	m.EnsurePrivilege(SeDebug)

	m.log.Debug("Suspending process", slog.Uint64("handle", uint64(h)))

	if err := m.backend.Suspend(h); err != nil {
		return fmt.Errorf("could not suspend process: %w", err)
	}

	return nil
}

func (m *Manager) Resume(h Handle) error {
	m.EnsurePrivilege(SeDebug)

	m.log.Debug("Resuming process", slog.Uint64("handle", uint64(h)))

	if err := m.backend.Resume(h); err != nil {
		return fmt.Errorf("could not resume process: %w", err)
	}

	return nil
}

// Kill terminates h with ExitCodeAborted.
func (m *Manager) Kill(h Handle) error {
	m.EnsurePrivilege(SeDebug)

	m.log.Debug("Terminating process", slog.Uint64("handle", uint64(h)))

	if err := m.backend.Terminate(h, ExitCodeAborted); err != nil {
		return fmt.Errorf("could not terminate process: %w", err)
	}

	return nil
}

func (m *Manager) SuspendPID(pid uint32) error {
	return m.withPID(pid, AccessSuspendResume, m.Suspend)
}

func (m *Manager) ResumePID(pid uint32) error {
	return m.withPID(pid, AccessSuspendResume, m.Resume)
}

func (m *Manager) KillPID(pid uint32) error {
	return m.withPID(pid, AccessTerminate, m.Kill)
}

// Inject copies code into h, runs it on a remote thread with a pointer to a
// copy of param (or nil when param is empty) and waits for it. A non-zero
// thread exit code is returned as *RemoteExitError.
func (m *Manager) Inject(h Handle, code, param []byte) error {
	m.log.Debug("Injecting code",
		slog.Uint64("handle", uint64(h)),
		slog.Int("code", len(code)),
		slog.Int("param", len(param)),
	)

	if err := inject(m.backend.Remote(h), code, param); err != nil {
		m.log.Debug("Injection failed", slog.Any("error", err))
		return err
	}

	return nil
}

func (m *Manager) InjectPID(pid uint32, code, param []byte) error {
	if len(code) == 0 {
		return ErrEmptyCode
	}

	return m.withPID(pid, AccessAll, func(h Handle) error {
		return m.Inject(h, code, param)
	})
}

func (m *Manager) withPID(pid, access uint32, fn func(Handle) error) (err error) {
	h, err := m.backend.OpenProcess(pid, access)
	if err != nil {
		return fmt.Errorf("could not open process %d: %w", pid, err)
	}
	defer func() {
		if cerr := m.backend.CloseHandle(h); cerr != nil {
			err = errors.Join(err, fmt.Errorf("could not close process %d: %w", pid, cerr))
		}
	}()

	return fn(h)
}

// RunCommand starts cmdline, waits for it and returns its exit code.
// Cancelling ctx terminates the child.
func (m *Manager) RunCommand(ctx context.Context, cmdline string, opts RunOptions) (uint32, error) {
	if strings.TrimSpace(cmdline) == "" {
		return 0, ErrEmptyCommand
	}

	m.log.Debug("Running command",
		slog.String("command", cmdline),
		slog.Bool("silent", opts.Silent),
		slog.String("dir", opts.Dir),
	)

	code, err := m.backend.Run(ctx, cmdline, opts)
	if err != nil {
		return 0, fmt.Errorf("could not run %q: %w", cmdline, err)
	}

	m.log.Debug("Command finished", slog.Uint64("exitCode", uint64(code)))

	return code, nil
}

// RunElevated launches file through the shell "runas" verb and returns the
// new process id.
func (m *Manager) RunElevated(file, args, dir string) (uint32, error) {
	if strings.TrimSpace(file) == "" {
		return 0, ErrEmptyCommand
	}

	m.log.Debug("Launching elevated", slog.String("file", file), slog.String("args", args))

	pid, err := m.backend.RunElevated(file, args, dir)
	if err != nil {
		return 0, fmt.Errorf("could not launch %s elevated: %w", file, err)
	}

	return pid, nil
}

// IsElevated reports whether the current process token is elevated.
func (m *Manager) IsElevated() (bool, error) {
	return m.backend.Elevated()
}

// CurrentProcessWindow returns the first unowned top-level window created by
// the current process.
func (m *Manager) CurrentProcessWindow() (uintptr, error) {
	hwnd := m.backend.CurrentProcessWindow()
	if hwnd == 0 {
		return 0, ErrNotFound
	}

	return hwnd, nil
}
