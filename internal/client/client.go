// Package client wires every OS wrapper to one logger, registry, cache and
// HTTP client built from a Config.
package client

import (
	"github.com/Norgate-AV/winutilz/internal/branding"
	"github.com/Norgate-AV/winutilz/internal/cache"
	"github.com/Norgate-AV/winutilz/internal/capture"
	"github.com/Norgate-AV/winutilz/internal/clipboard"
	"github.com/Norgate-AV/winutilz/internal/config"
	"github.com/Norgate-AV/winutilz/internal/cursor"
	"github.com/Norgate-AV/winutilz/internal/interfaces"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/netget"
	"github.com/Norgate-AV/winutilz/internal/power"
	"github.com/Norgate-AV/winutilz/internal/process"
	"github.com/Norgate-AV/winutilz/internal/regstore"
	"github.com/Norgate-AV/winutilz/internal/shell"
	"github.com/Norgate-AV/winutilz/internal/syscolors"
	"github.com/Norgate-AV/winutilz/internal/wallpaper"
	"github.com/Norgate-AV/winutilz/internal/window"
)

// Deps overrides the shared services. Nil fields select the system ones.
type Deps struct {
	Registry   interfaces.Registry
	Downloader interfaces.Downloader
}

// Client holds one manager per wrapper.
type Client struct {
	Log        logger.LoggerInterface
	Cache      *cache.Cache
	Downloader interfaces.Downloader

	Cursor    *cursor.Manager
	Wallpaper *wallpaper.Manager
	Colors    *syscolors.Manager
	Clipboard *clipboard.Manager
	Capture   *capture.Manager
	Process   *process.Manager
	Power     *power.Manager
	Shell     *shell.Manager
	Window    *window.Manager
	Branding  *branding.Manager
}

// New builds a Client. A nil cfg selects config.Default and a nil log
// discards output.
func New(cfg *config.Config, log logger.LoggerInterface, deps Deps) *Client {
	if cfg == nil {
		cfg = config.Default()
	}

	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Registry == nil {
		deps.Registry = regstore.System()
	}

	if deps.Downloader == nil {
		deps.Downloader = netget.NewClient(log, netget.Options{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.HTTPTimeout,
			RetryMax:  retries(cfg.HTTPRetries),
		})
	}

	stage := cache.New(cfg.CacheDir)
	colors := syscolors.NewManager(log, syscolors.Deps{Registry: deps.Registry})
	proc := process.NewManager(log, process.Deps{})

	return &Client{
		Log:        log,
		Cache:      stage,
		Downloader: deps.Downloader,
		Cursor: cursor.NewManager(log, cursor.Deps{
			Registry:   deps.Registry,
			Cache:      stage,
			Downloader: deps.Downloader,
		}),
		Wallpaper: wallpaper.NewManager(log, wallpaper.Deps{
			Registry:   deps.Registry,
			Cache:      stage,
			Downloader: deps.Downloader,
			Colors:     colors,
		}),
		Colors: colors,
		Clipboard: clipboard.NewManager(log, clipboard.Deps{
			OpenAttempts: cfg.ClipboardAttempts,
			OpenDelay:    cfg.ClipboardDelay,
		}),
		Capture:  capture.NewManager(log, capture.Deps{}),
		Process:  proc,
		Power:    power.NewManager(log, power.Deps{Privileges: proc}),
		Shell:    shell.NewManager(log, shell.Deps{}),
		Window:   window.NewManager(log, window.Deps{}),
		Branding: branding.NewManager(log, branding.Deps{}),
	}
}

// retries maps the configured count onto netget.Options, where zero means
// the default and a negative value disables retrying.
func retries(n int) int {
	if n == 0 {
		return -1
	}

	return n
}
