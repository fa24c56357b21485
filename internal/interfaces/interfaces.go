// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import (
	"context"

	"github.com/Norgate-AV/winutilz/internal/resource"
)

// Registry reads and writes values under HKEY_CURRENT_USER.
type Registry interface {
	GetString(key, name string) (string, error)
	SetString(key, name, value string) error
	SetExpandString(key, name, value string) error
	GetInteger(key, name string) (uint64, error)
	SetDWord(key, name string, value uint32) error
}

// Downloader fetches a URL into a local file
type Downloader interface {
	DownloadFile(ctx context.Context, url, path string) (int64, error)
}

// Stager places bytes in the cache directory and returns their path
type Stager interface {
	Path(name string) (string, error)
	StageBytes(name string, data []byte) (string, error)
}

// ResourceLoader reads embedded resources
type ResourceLoader = resource.Loader
