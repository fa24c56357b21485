package cursor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Norgate-AV/winutilz/internal/cache"
	"github.com/Norgate-AV/winutilz/internal/envpath"
	"github.com/Norgate-AV/winutilz/internal/interfaces"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/netget"
	"github.com/Norgate-AV/winutilz/internal/regstore"
	"github.com/Norgate-AV/winutilz/internal/resource"
)

// RegistryPath is the HKCU key holding one value per Icon.
const RegistryPath = `Control Panel\Cursors`

// ErrNotCursorFile is returned when a file is neither .cur nor .ani.
var ErrNotCursorFile = errors.New("not a cursor file")

// Backend asks the OS to reload cursors from the registry.
type Backend interface {
	ReloadCursors() error
}

// Deps are the collaborators of a Manager. Nil fields select the system
// implementations.
type Deps struct {
	Registry   interfaces.Registry
	Cache      interfaces.Stager
	Downloader interfaces.Downloader
	Backend    Backend
}

// Manager sets and reads cursor registry values.
type Manager struct {
	log        logger.LoggerInterface
	registry   interfaces.Registry
	cache      interfaces.Stager
	downloader interfaces.Downloader
	backend    Backend
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Registry == nil {
		deps.Registry = regstore.System()
	}

	if deps.Cache == nil {
		deps.Cache = cache.New("")
	}

	if deps.Downloader == nil {
		deps.Downloader = netget.NewClient(log, netget.Options{})
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	return &Manager{
		log:        log,
		registry:   deps.Registry,
		cache:      deps.Cache,
		downloader: deps.Downloader,
		backend:    deps.Backend,
	}
}

// ReadFileType opens path and classifies its header.
func ReadFileType(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer f.Close()

	var header [HeaderSize]byte
	n, err := io.ReadFull(f, header[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return FileTypeUnknown, err
	}

	return DetectFileType(header[:n]), nil
}

// Set points icon at the cursor file at path. %VAR% references are expanded
// before the file is checked, and the expanded path is stored.
func (m *Manager) Set(icon Icon, path string) error {
	if !icon.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIcon, int(icon))
	}

	expanded := envpath.Expand(path)

	kind, err := ReadFileType(expanded)
	if err != nil {
		return fmt.Errorf("could not read cursor file: %w", err)
	}

	if kind == FileTypeUnknown {
		return fmt.Errorf("%w: %s", ErrNotCursorFile, expanded)
	}

	m.log.Debug("Setting cursor",
		slog.String("icon", icon.String()),
		slog.String("path", expanded),
		slog.String("type", kind.String()),
	)

	if err := m.registry.SetExpandString(RegistryPath, icon.String(), expanded); err != nil {
		return fmt.Errorf("could not store cursor path: %w", err)
	}

	return m.reload()
}

// Get returns the expanded path configured for icon. An icon that uses the
// system default has an empty path.
func (m *Manager) Get(icon Icon) (string, error) {
	if !icon.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidIcon, int(icon))
	}

	v, err := m.registry.GetString(RegistryPath, icon.String())
	if errors.Is(err, regstore.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("could not read cursor path: %w", err)
	}

	return envpath.Expand(v), nil
}

// Reset restores the system default cursor for icon.
func (m *Manager) Reset(icon Icon) error {
	if !icon.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIcon, int(icon))
	}

	m.log.Debug("Resetting cursor", slog.String("icon", icon.String()))

	if err := m.registry.SetExpandString(RegistryPath, icon.String(), ""); err != nil {
		return fmt.Errorf("could not clear cursor path: %w", err)
	}

	return m.reload()
}

// SetFromResource stages a resource in the cache under the icon name, then
// calls Set.
func (m *Manager) SetFromResource(icon Icon, loader interfaces.ResourceLoader, name, typ resource.ID) error {
	if !icon.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIcon, int(icon))
	}

	data, err := loader.Load(name, typ)
	if err != nil {
		return fmt.Errorf("could not load cursor resource: %w", err)
	}

	path, err := m.cache.StageBytes(icon.String(), data)
	if err != nil {
		return err
	}

	return m.Set(icon, path)
}

// SetFromURL downloads into the cache under the icon name, then calls Set.
func (m *Manager) SetFromURL(ctx context.Context, icon Icon, url string) error {
	if !icon.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIcon, int(icon))
	}

	path, err := m.cache.Path(icon.String())
	if err != nil {
		return err
	}

	if _, err := m.downloader.DownloadFile(ctx, url, path); err != nil {
		return fmt.Errorf("could not download cursor: %w", err)
	}

	return m.Set(icon, path)
}

func (m *Manager) reload() error {
	if err := m.backend.ReloadCursors(); err != nil {
		m.log.Debug("Cursor reload failed", slog.Any("error", err))
		return fmt.Errorf("could not reload cursors: %w", err)
	}

	return nil
}
