package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/capture"
	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/testutil"
)

const desktop uintptr = 0x10010

type fakeBackend struct {
	width, height int
	sizeErr       error
	renderErr     error
	rendered      []capture.Strategy
	hwnds         []uintptr
}

func (f *fakeBackend) DesktopWindow() uintptr { return desktop }

func (f *fakeBackend) WindowSize(hwnd uintptr) (int, int, error) {
	return f.width, f.height, f.sizeErr
}

func (f *fakeBackend) Render(hwnd uintptr, width, height int, s capture.Strategy) (*imagedata.ImageData, error) {
	f.rendered = append(f.rendered, s)
	f.hwnds = append(f.hwnds, hwnd)

	if f.renderErr != nil {
		return nil, f.renderErr
	}

	// GDI output with no alpha.
	return imagedata.New(width, height)
}

func host(windows8, composition bool) capture.Deps {
	return capture.Deps{
		Windows8OrGreater:  func() bool { return windows8 },
		CompositionEnabled: func() bool { return composition },
	}
}

func TestSelectStrategy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, capture.StrategyPrintFullContent, capture.SelectStrategy(true, true))
	assert.Equal(t, capture.StrategyPrintFullContent, capture.SelectStrategy(true, false))
	assert.Equal(t, capture.StrategyPrintWindow, capture.SelectStrategy(false, true))
	assert.Equal(t, capture.StrategyBitBlt, capture.SelectStrategy(false, false))
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	for _, s := range []capture.Strategy{
		capture.StrategyAuto,
		capture.StrategyPrintFullContent,
		capture.StrategyPrintWindow,
		capture.StrategyBitBlt,
	} {
		got, err := capture.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := capture.ParseStrategy(" BitBlt ")
	require.NoError(t, err)
	assert.Equal(t, capture.StrategyBitBlt, got)

	got, err = capture.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, capture.StrategyAuto, got)

	_, err = capture.ParseStrategy("magic")
	assert.ErrorIs(t, err, capture.ErrInvalidStrategy)

	assert.Equal(t, "Strategy(9)", capture.Strategy(9).String())
}

func TestWindow_Windows8KeepsAlpha(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{width: 4, height: 3}
	deps := host(true, true)
	deps.Backend = backend

	img, err := capture.NewManager(testutil.NewMockLogger(), deps).Window(0x42)
	require.NoError(t, err)

	assert.Equal(t, []capture.Strategy{capture.StrategyPrintFullContent}, backend.rendered)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)

	c, err := img.Pixel(0, 0)
	require.NoError(t, err)
	assert.Zero(t, c.A())
}

func TestWindow_LegacyHostForcesOpaque(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{width: 2, height: 2}
	deps := host(false, false)
	deps.Backend = backend

	img, err := capture.NewManager(nil, deps).Window(0x42)
	require.NoError(t, err)

	assert.Equal(t, []capture.Strategy{capture.StrategyBitBlt}, backend.rendered)

	c, err := img.Pixel(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), c.A())
}

func TestWindow_ExplicitStrategy(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{width: 2, height: 2}
	deps := host(true, true)
	deps.Backend = backend
	deps.Strategy = capture.StrategyBitBlt

	_, err := capture.NewManager(nil, deps).Window(0x42)
	require.NoError(t, err)
	assert.Equal(t, []capture.Strategy{capture.StrategyBitBlt}, backend.rendered)
}

func TestWindow_Empty(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{width: 0, height: 10}
	deps := host(true, true)
	deps.Backend = backend

	_, err := capture.NewManager(nil, deps).Window(0x42)
	assert.ErrorIs(t, err, capture.ErrEmptyWindow)
	assert.Empty(t, backend.rendered)
}

func TestWindow_Errors(t *testing.T) {
	t.Parallel()

	deps := host(true, true)
	deps.Backend = &fakeBackend{sizeErr: testutil.ErrMock}

	_, err := capture.NewManager(nil, deps).Window(0x42)
	assert.ErrorIs(t, err, testutil.ErrMock)

	deps.Backend = &fakeBackend{width: 1, height: 1, renderErr: testutil.ErrMock}
	log := testutil.NewMockLogger()

	_, err = capture.NewManager(log, deps).Window(0x42)
	assert.ErrorIs(t, err, testutil.ErrMock)
	assert.True(t, log.HasMessage("Capture failed"))
}

func TestScreen(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{width: 8, height: 6}
	deps := host(true, true)
	deps.Backend = backend

	img, err := capture.NewManager(nil, deps).Screen()
	require.NoError(t, err)
	assert.Equal(t, []uintptr{desktop}, backend.hwnds)
	assert.Equal(t, 8, img.Width)
}
