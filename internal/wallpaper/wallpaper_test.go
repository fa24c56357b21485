package wallpaper_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/cache"
	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/resource"
	"github.com/Norgate-AV/winutilz/internal/syscolors"
	"github.com/Norgate-AV/winutilz/internal/testutil"
	"github.com/Norgate-AV/winutilz/internal/wallpaper"
)

type fakeBackend struct {
	current string
	sets    []string
	err     error
}

func (f *fakeBackend) SetWallpaper(path string) error {
	f.sets = append(f.sets, path)
	if f.err != nil {
		return f.err
	}

	f.current = path
	return nil
}

func (f *fakeBackend) Wallpaper() (string, error) {
	return f.current, nil
}

type fakeColors struct {
	saved []syscolors.Entry
	color colorref.ColorRef
}

func (f *fakeColors) Save(entries ...syscolors.Entry) error {
	f.saved = append(f.saved, entries...)
	return nil
}

func (f *fakeColors) Get(el syscolors.Element) (colorref.ColorRef, error) {
	return f.color, nil
}

type fixture struct {
	manager    *wallpaper.Manager
	registry   *testutil.MockRegistry
	backend    *fakeBackend
	colors     *fakeColors
	downloader *testutil.MockDownloader
	cacheDir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		registry:   testutil.NewMockRegistry(),
		backend:    &fakeBackend{},
		colors:     &fakeColors{},
		downloader: testutil.NewMockDownloader(),
		cacheDir:   t.TempDir(),
	}

	f.manager = wallpaper.NewManager(testutil.NewMockLogger(), wallpaper.Deps{
		Registry:   f.registry,
		Cache:      cache.New(f.cacheDir),
		Downloader: f.downloader,
		Colors:     f.colors,
		Backend:    f.backend,
	})

	return f
}

func (f *fixture) registryPair(t *testing.T) (string, string) {
	t.Helper()

	style, err := f.registry.GetString(wallpaper.RegistryPath, wallpaper.StyleValue)
	require.NoError(t, err)

	tile, err := f.registry.GetString(wallpaper.RegistryPath, wallpaper.TileValue)
	require.NoError(t, err)

	return style, tile
}

func TestStyle_RegistryValues(t *testing.T) {
	t.Parallel()

	want := map[wallpaper.Style][2]string{
		wallpaper.Center:     {"0", "0"},
		wallpaper.Tile:       {"0", "1"},
		wallpaper.Stretch:    {"2", "0"},
		wallpaper.KeepAspect: {"6", "0"},
		wallpaper.CropToFit:  {"10", "0"},
		wallpaper.Span:       {"22", "0"},
	}

	for style, pair := range want {
		s, tile, err := style.RegistryValues()
		require.NoError(t, err)
		assert.Equal(t, pair, [2]string{s, tile}, style.String())

		back, err := wallpaper.StyleFromRegistry(s, tile)
		require.NoError(t, err)
		assert.Equal(t, style, back)
	}

	_, _, err := wallpaper.Style(6).RegistryValues()
	assert.ErrorIs(t, err, wallpaper.ErrInvalidStyle)

	_, err = wallpaper.StyleFromRegistry("3", "0")
	assert.ErrorIs(t, err, wallpaper.ErrInvalidStyle)

	s, err := wallpaper.StyleFromRegistry("10", "")
	require.NoError(t, err)
	assert.Equal(t, wallpaper.CropToFit, s)
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]wallpaper.Style{
		"center":     wallpaper.Center,
		"TILE":       wallpaper.Tile,
		"fit":        wallpaper.KeepAspect,
		"keepaspect": wallpaper.KeepAspect,
		"fill":       wallpaper.CropToFit,
		"CropToFit":  wallpaper.CropToFit,
		"span":       wallpaper.Span,
	} {
		got, err := wallpaper.ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := wallpaper.ParseStyle("zoom")
	assert.ErrorIs(t, err, wallpaper.ErrInvalidStyle)
	assert.Len(t, wallpaper.Styles(), 6)
}

func TestSet(t *testing.T) {
	f := newFixture(t)

	dir := t.TempDir()
	t.Setenv("WINUTILZ_WALLS", dir)
	testutil.WriteFile(t, dir, "sky.jpg", []byte("jpeg"))

	require.NoError(t, f.manager.Set("%WINUTILZ_WALLS%/sky.jpg", wallpaper.Tile))

	require.Len(t, f.backend.sets, 1)
	assert.Equal(t, filepath.Join(dir, "sky.jpg"), filepath.FromSlash(f.backend.sets[0]))

	style, tile := f.registryPair(t)
	assert.Equal(t, "0", style)
	assert.Equal(t, "1", tile)

	got, err := f.manager.Style()
	require.NoError(t, err)
	assert.Equal(t, wallpaper.Tile, got)
}

func TestSet_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	path := testutil.WriteFile(t, t.TempDir(), "a.bmp", []byte("bmp"))

	assert.ErrorIs(t, f.manager.Set(path, wallpaper.Style(-1)), wallpaper.ErrInvalidStyle)
	assert.ErrorIs(t, f.manager.Set(filepath.Join(t.TempDir(), "none.bmp"), wallpaper.Center), os.ErrNotExist)
	assert.Error(t, f.manager.Set(t.TempDir(), wallpaper.Center))
	assert.Empty(t, f.registry.Writes)
	assert.Empty(t, f.backend.sets)
}

func TestSet_BackendFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.backend.err = testutil.ErrMock
	path := testutil.WriteFile(t, t.TempDir(), "a.bmp", []byte("bmp"))

	assert.ErrorIs(t, f.manager.Set(path, wallpaper.Center), testutil.ErrMock)
}

func TestSetStyle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	assert.Error(t, f.manager.SetStyle(wallpaper.Span), "no wallpaper yet")

	path := testutil.WriteFile(t, t.TempDir(), "a.bmp", []byte("bmp"))
	require.NoError(t, f.manager.Set(path, wallpaper.Center))
	require.NoError(t, f.manager.SetStyle(wallpaper.Span))

	assert.Equal(t, []string{path, path}, f.backend.sets)

	style, tile := f.registryPair(t)
	assert.Equal(t, "22", style)
	assert.Equal(t, "0", tile)
}

func TestSetFromImage(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	img, err := imagedata.New(4, 2)
	require.NoError(t, err)
	require.NoError(t, img.SetPixel(1, 1, colorref.RGBA(200, 10, 10, 0)))

	require.NoError(t, f.manager.SetFromImage(img, wallpaper.Stretch))

	staged := filepath.Join(f.cacheDir, wallpaper.CacheName)
	assert.Equal(t, []string{staged}, f.backend.sets)

	decoded, err := imagedata.LoadFile(staged)
	require.NoError(t, err)

	c, err := decoded.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, colorref.RGB(200, 10, 10), c)

	orig, err := img.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), orig.A(), "the caller's image is not modified")
}

func TestSetFromResource(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	loader := testutil.NewMockResourceLoader().
		WithResource(resource.Name("WALL"), resource.RCData, []byte("image bytes"))

	require.NoError(t, f.manager.SetFromResource(loader, resource.Name("WALL"), resource.RCData, wallpaper.CropToFit))

	data, err := os.ReadFile(filepath.Join(f.cacheDir, wallpaper.CacheName))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	assert.ErrorIs(t, f.manager.SetFromResource(loader, resource.Name("NONE"), resource.RCData, wallpaper.Center), resource.ErrNotFound)
}

func TestSetFromURL(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.downloader.WithBody("https://example.com/w.jpg", []byte("jpeg"))

	require.NoError(t, f.manager.SetFromURL(context.Background(), "https://example.com/w.jpg", wallpaper.KeepAspect))
	assert.Equal(t, []string{filepath.Join(f.cacheDir, wallpaper.CacheName)}, f.backend.sets)

	f.downloader.WithError(testutil.ErrMock)
	assert.ErrorIs(t, f.manager.SetFromURL(context.Background(), "https://example.com/w.jpg", wallpaper.KeepAspect), testutil.ErrMock)
}

func TestBackgroundColor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.colors.color = colorref.RGB(1, 2, 3)

	require.NoError(t, f.manager.SetBackgroundColor(colorref.RGB(9, 8, 7)))
	assert.Equal(t, []syscolors.Entry{{Element: syscolors.Background, Color: colorref.RGB(9, 8, 7)}}, f.colors.saved)

	c, err := f.manager.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, colorref.RGB(1, 2, 3), c)
}
