package wallpaper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Norgate-AV/winutilz/internal/cache"
	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/envpath"
	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/interfaces"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/netget"
	"github.com/Norgate-AV/winutilz/internal/regstore"
	"github.com/Norgate-AV/winutilz/internal/resource"
	"github.com/Norgate-AV/winutilz/internal/syscolors"
)

const (
	// RegistryPath holds the style values.
	RegistryPath = `Control Panel\Desktop`

	StyleValue = "WallpaperStyle"
	TileValue  = "TileWallpaper"

	// CacheName is the cache file used for staged wallpapers.
	CacheName = "Wallpaper"
)

// Backend talks to SystemParametersInfo.
type Backend interface {
	SetWallpaper(path string) error
	Wallpaper() (string, error)
}

// Colors is the part of syscolors.Manager used for the background color.
type Colors interface {
	Save(entries ...syscolors.Entry) error
	Get(el syscolors.Element) (colorref.ColorRef, error)
}

type Deps struct {
	Registry   interfaces.Registry
	Cache      interfaces.Stager
	Downloader interfaces.Downloader
	Colors     Colors
	Backend    Backend
}

// Manager changes the desktop wallpaper.
type Manager struct {
	log        logger.LoggerInterface
	registry   interfaces.Registry
	cache      interfaces.Stager
	downloader interfaces.Downloader
	colors     Colors
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

	if deps.Colors == nil {
		deps.Colors = syscolors.NewManager(log, syscolors.Deps{Registry: deps.Registry})
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	return &Manager{
		log:        log,
		registry:   deps.Registry,
		cache:      deps.Cache,
		downloader: deps.Downloader,
		colors:     deps.Colors,
		backend:    deps.Backend,
	}
}

// Set makes the image at path the wallpaper with the given style. %VAR%
// references in path are expanded.
func (m *Manager) Set(path string, style Style) error {
	styleValue, tileValue, err := style.RegistryValues()
	if err != nil {
		return err
	}

	expanded := envpath.Expand(path)

	info, err := os.Stat(expanded)
	if err != nil {
		return fmt.Errorf("wallpaper not found: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("wallpaper path is a directory: %s", expanded)
	}

	m.log.Debug("Setting wallpaper",
		slog.String("path", expanded),
		slog.String("style", style.String()),
	)

	if err := m.registry.SetString(RegistryPath, TileValue, tileValue); err != nil {
		return fmt.Errorf("could not store wallpaper style: %w", err)
	}

	if err := m.registry.SetString(RegistryPath, StyleValue, styleValue); err != nil {
		return fmt.Errorf("could not store wallpaper style: %w", err)
	}

	if err := m.backend.SetWallpaper(expanded); err != nil {
		return fmt.Errorf("could not set wallpaper: %w", err)
	}

	return nil
}

// Get returns the current wallpaper path, or "" when there is none.
func (m *Manager) Get() (string, error) {
	path, err := m.backend.Wallpaper()
	if err != nil {
		return "", fmt.Errorf("could not read wallpaper: %w", err)
	}

	return path, nil
}

// Style reads the current style from the registry.
func (m *Manager) Style() (Style, error) {
	styleValue, err := m.registry.GetString(RegistryPath, StyleValue)
	if err != nil {
		return 0, fmt.Errorf("could not read wallpaper style: %w", err)
	}

	tileValue, err := m.registry.GetString(RegistryPath, TileValue)
	if err != nil && !errors.Is(err, regstore.ErrNotExist) {
		return 0, fmt.Errorf("could not read wallpaper style: %w", err)
	}

	return StyleFromRegistry(styleValue, tileValue)
}

// SetStyle reapplies the current wallpaper with a new style.
func (m *Manager) SetStyle(style Style) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyle, int(style))
	}

	path, err := m.Get()
	if err != nil {
		return err
	}

	if path == "" {
		return errors.New("no wallpaper is set")
	}

	return m.Set(path, style)
}

// SetFromImage saves img as a BMP in the cache and sets it.
func (m *Manager) SetFromImage(img *imagedata.ImageData, style Style) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyle, int(style))
	}

	if err := img.Validate(); err != nil {
		return err
	}

	opaque := img.Clone()
	opaque.ForceOpaque()

	var buf bytes.Buffer
	if err := opaque.Encode(&buf, imagedata.BMP, nil); err != nil {
		return fmt.Errorf("could not encode wallpaper: %w", err)
	}

	path, err := m.cache.StageBytes(CacheName, buf.Bytes())
	if err != nil {
		return err
	}

	return m.Set(path, style)
}

// SetFromResource stages a resource in the cache and sets it.
func (m *Manager) SetFromResource(loader interfaces.ResourceLoader, name, typ resource.ID, style Style) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyle, int(style))
	}

	data, err := loader.Load(name, typ)
	if err != nil {
		return fmt.Errorf("could not load wallpaper resource: %w", err)
	}

	path, err := m.cache.StageBytes(CacheName, data)
	if err != nil {
		return err
	}

	return m.Set(path, style)
}

// SetFromURL downloads into the cache and sets it.
func (m *Manager) SetFromURL(ctx context.Context, url string, style Style) error {
	if !style.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStyle, int(style))
	}

	path, err := m.cache.Path(CacheName)
	if err != nil {
		return err
	}

	if _, err := m.downloader.DownloadFile(ctx, url, path); err != nil {
		return fmt.Errorf("could not download wallpaper: %w", err)
	}

	return m.Set(path, style)
}

// SetBackgroundColor sets the solid desktop color shown around or instead of
// the wallpaper.
func (m *Manager) SetBackgroundColor(c colorref.ColorRef) error {
	return m.colors.Save(syscolors.Entry{Element: syscolors.Background, Color: c})
}

// BackgroundColor returns the desktop color.
func (m *Manager) BackgroundColor() (colorref.ColorRef, error) {
	return m.colors.Get(syscolors.Desktop)
}
