package client_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/client"
	"github.com/Norgate-AV/winutilz/internal/config"
	"github.com/Norgate-AV/winutilz/internal/cursor"
	"github.com/Norgate-AV/winutilz/internal/testutil"
	"github.com/Norgate-AV/winutilz/internal/wallpaper"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c := client.New(nil, nil, client.Deps{Registry: testutil.NewMockRegistry()})

	assert.NotNil(t, c.Log)
	assert.NotNil(t, c.Cache)
	assert.NotNil(t, c.Downloader)
	assert.NotNil(t, c.Cursor)
	assert.NotNil(t, c.Wallpaper)
	assert.NotNil(t, c.Colors)
	assert.NotNil(t, c.Clipboard)
	assert.NotNil(t, c.Capture)
	assert.NotNil(t, c.Process)
	assert.NotNil(t, c.Power)
	assert.NotNil(t, c.Shell)
	assert.NotNil(t, c.Window)
	assert.NotNil(t, c.Branding)
}

func TestNew_SharesRegistry(t *testing.T) {
	t.Parallel()

	reg := testutil.NewMockRegistry().
		WithString(cursor.RegistryPath, "Arrow", `C:\cursors\arrow.cur`).
		WithString(wallpaper.RegistryPath, wallpaper.StyleValue, "10").
		WithString(wallpaper.RegistryPath, wallpaper.TileValue, "0")

	c := client.New(config.Default(), testutil.NewMockLogger(), client.Deps{Registry: reg})

	path, err := c.Cursor.Get(cursor.Arrow)
	require.NoError(t, err)
	assert.Equal(t, `C:\cursors\arrow.cur`, path)

	style, err := c.Wallpaper.Style()
	require.NoError(t, err)
	assert.Equal(t, wallpaper.CropToFit, style)
}

func TestNew_UsesConfiguredCache(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.CacheDir = t.TempDir()

	c := client.New(cfg, nil, client.Deps{Registry: testutil.NewMockRegistry()})

	path, err := c.Cache.Path("cursor.cur")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.CacheDir, "cursor.cur"), path)
}

func TestNew_UsesProvidedDownloader(t *testing.T) {
	t.Parallel()

	dl := testutil.NewMockDownloader().WithBody("https://example.com/a", []byte("abc"))
	c := client.New(nil, nil, client.Deps{Registry: testutil.NewMockRegistry(), Downloader: dl})

	dst := filepath.Join(t.TempDir(), "a")
	n, err := c.Downloader.DownloadFile(context.Background(), "https://example.com/a", dst)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
