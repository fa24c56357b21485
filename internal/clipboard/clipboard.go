// Package clipboard reads and writes Unicode text and DIB images on the
// Windows clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/textconv"
	"github.com/Norgate-AV/winutilz/internal/timeouts"
)

// Standard clipboard formats.
const (
	FormatDIB         uint32 = 8
	FormatUnicodeText uint32 = 13
)

// ErrFormatUnavailable is returned when the clipboard holds no data in the
// requested format.
var ErrFormatUnavailable = errors.New("clipboard format not available")

// Backend is the raw clipboard API. Open and Close bracket every other call
// except IsFormatAvailable.
type Backend interface {
	// OwnerWindow returns a window to own the clipboard while it is open,
	// and a function releasing it.
	OwnerWindow() (owner uintptr, release func(), err error)
	Open(owner uintptr) error
	Close() error
	Empty() error
	IsFormatAvailable(format uint32) bool
	GetData(format uint32) ([]byte, error)
	SetData(format uint32, data []byte) error
}

type Deps struct {
	Backend Backend

	// OpenAttempts and OpenDelay control the OpenClipboard retry loop.
	// Zero selects the defaults in timeouts.
	OpenAttempts uint
	OpenDelay    time.Duration
}

// Manager performs clipboard transactions.
type Manager struct {
	log      logger.LoggerInterface
	backend  Backend
	attempts uint
	delay    time.Duration
}

func NewManager(log logger.LoggerInterface, deps Deps) *Manager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if deps.Backend == nil {
		deps.Backend = systemBackend{}
	}

	if deps.OpenAttempts == 0 {
		deps.OpenAttempts = timeouts.ClipboardOpenAttempts
	}

	if deps.OpenDelay == 0 {
		deps.OpenDelay = timeouts.ClipboardOpenDelay
	}

	return &Manager{
		log:      log,
		backend:  deps.Backend,
		attempts: deps.OpenAttempts,
		delay:    deps.OpenDelay,
	}
}

// with opens the clipboard, runs fn and closes it again.
func (m *Manager) with(fn func() error) (err error) {
	owner, release, err := m.backend.OwnerWindow()
	if err != nil {
		return fmt.Errorf("could not get clipboard owner window: %w", err)
	}
	defer release()

	err = retry.Do(
		func() error { return m.backend.Open(owner) },
		retry.Attempts(m.attempts),
		retry.Delay(m.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			m.log.Trace("Clipboard busy, retrying", slog.Int("attempt", int(n)+1), slog.Any("error", err))
		}),
	)
	if err != nil {
		return fmt.Errorf("could not open clipboard: %w", err)
	}

	defer func() {
		if cerr := m.backend.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("could not close clipboard: %w", cerr))
		}
	}()

	return fn()
}

func (m *Manager) set(format uint32, data []byte) error {
	return m.with(func() error {
		if err := m.backend.Empty(); err != nil {
			return fmt.Errorf("could not empty clipboard: %w", err)
		}

		return m.backend.SetData(format, data)
	})
}

func (m *Manager) get(format uint32) ([]byte, error) {
	if !m.backend.IsFormatAvailable(format) {
		return nil, fmt.Errorf("%w: %d", ErrFormatUnavailable, format)
	}

	var data []byte
	err := m.with(func() error {
		var err error
		data, err = m.backend.GetData(format)
		return err
	})

	return data, err
}

// SetText replaces the clipboard contents with s.
func (m *Manager) SetText(s string) error {
	data, err := textconv.EncodeUTF16LE(s)
	if err != nil {
		return err
	}

	m.log.Debug("Setting clipboard text", slog.Int("length", len(s)))

	return m.set(FormatUnicodeText, data)
}

// Text returns the clipboard text.
func (m *Manager) Text() (string, error) {
	data, err := m.get(FormatUnicodeText)
	if err != nil {
		return "", err
	}

	return textconv.DecodeUTF16LE(data)
}

// SetImage replaces the clipboard contents with img as a CF_DIB.
func (m *Manager) SetImage(img *imagedata.ImageData) error {
	data, err := img.MarshalDIB()
	if err != nil {
		return err
	}

	m.log.Debug("Setting clipboard image", slog.Int("width", img.Width), slog.Int("height", img.Height))

	return m.set(FormatDIB, data)
}

// Image returns the clipboard image. Bitmaps placed as CF_BITMAP are
// converted to CF_DIB by the OS.
func (m *Manager) Image() (*imagedata.ImageData, error) {
	data, err := m.get(FormatDIB)
	if err != nil {
		return nil, err
	}

	return imagedata.ParseDIB(data)
}

// Clear empties the clipboard.
func (m *Manager) Clear() error {
	return m.with(m.backend.Empty)
}

func (m *Manager) HasText() bool {
	return m.backend.IsFormatAvailable(FormatUnicodeText)
}

func (m *Manager) HasImage() bool {
	return m.backend.IsFormatAvailable(FormatDIB)
}
