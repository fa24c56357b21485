// Package branding expands Windows branding tokens such as %WINDOWS_LONG%.
package branding

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/winutilz/internal/logger"
)

// Tokens understood by winbrand.dll.
const (
	WindowsLong    = "%WINDOWS_LONG%"
	WindowsShort   = "%WINDOWS_SHORT%"
	WindowsGeneric = "%WINDOWS_GENERIC%"
	WindowsProduct = "%WINDOWS_PRODUCT%"
	Copyright      = "%WINDOWS_COPYRIGHT%"
	CompanyName    = "%MICROSOFT_COMPANYNAME%"
)

var ErrEmptyFormat = errors.New("empty branding format")

// Tokens lists the well-known tokens.
func Tokens() []string {
	return []string{WindowsLong, WindowsShort, WindowsGeneric, WindowsProduct, Copyright, CompanyName}
}

type Backend interface {
	FormatString(format string) (string, error)
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

// Format replaces the branding tokens in format, for example
// "%WINDOWS_LONG%" becomes "Windows 11 Pro".
func (m *Manager) Format(format string) (string, error) {
	if format == "" {
		return "", ErrEmptyFormat
	}

	out, err := m.backend.FormatString(format)
	if err != nil {
		return "", fmt.Errorf("could not format %q: %w", format, err)
	}

	m.log.Debug("Formatted branding string", slog.String("format", format), slog.String("result", out))

	return out, nil
}
