package clipboard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/clipboard"
	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/imagedata"
	"github.com/Norgate-AV/winutilz/internal/testutil"
)

var errBusy = errors.New("clipboard busy")

type fakeBackend struct {
	data     map[uint32][]byte
	open     bool
	busyFor  int
	opens    int
	closes   int
	released int
	ownerErr error
	closeErr error
	calls    []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: map[uint32][]byte{}}
}

func (f *fakeBackend) OwnerWindow() (uintptr, func(), error) {
	if f.ownerErr != nil {
		return 0, nil, f.ownerErr
	}

	return 0x1234, func() { f.released++ }, nil
}

func (f *fakeBackend) Open(owner uintptr) error {
	f.opens++
	if f.busyFor > 0 {
		f.busyFor--
		return errBusy
	}

	f.open = true
	f.calls = append(f.calls, "open")
	return nil
}

func (f *fakeBackend) Close() error {
	f.closes++
	f.open = false
	f.calls = append(f.calls, "close")
	return f.closeErr
}

func (f *fakeBackend) Empty() error {
	if !f.open {
		return errors.New("clipboard not open")
	}

	f.data = map[uint32][]byte{}
	f.calls = append(f.calls, "empty")
	return nil
}

func (f *fakeBackend) IsFormatAvailable(format uint32) bool {
	_, ok := f.data[format]
	return ok
}

func (f *fakeBackend) GetData(format uint32) ([]byte, error) {
	if !f.open {
		return nil, errors.New("clipboard not open")
	}

	f.calls = append(f.calls, "get")
	return f.data[format], nil
}

func (f *fakeBackend) SetData(format uint32, data []byte) error {
	if !f.open {
		return errors.New("clipboard not open")
	}

	f.calls = append(f.calls, "set")
	f.data[format] = data
	return nil
}

func newManager(backend *fakeBackend) *clipboard.Manager {
	return clipboard.NewManager(testutil.NewMockLogger(), clipboard.Deps{
		Backend:   backend,
		OpenDelay: time.Millisecond,
	})
}

func TestText_RoundTrip(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	m := newManager(backend)

	assert.False(t, m.HasText())

	require.NoError(t, m.SetText("héllo, 世界"))
	assert.True(t, m.HasText())
	assert.Equal(t, []string{"open", "empty", "set", "close"}, backend.calls)
	assert.Equal(t, 1, backend.released)

	got, err := m.Text()
	require.NoError(t, err)
	assert.Equal(t, "héllo, 世界", got)

	raw := backend.data[clipboard.FormatUnicodeText]
	assert.Equal(t, []byte{0, 0}, raw[len(raw)-2:], "text is NUL terminated")
}

func TestText_Unavailable(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	m := newManager(backend)

	_, err := m.Text()
	assert.ErrorIs(t, err, clipboard.ErrFormatUnavailable)
	assert.Zero(t, backend.opens, "availability is checked before opening")

	_, err = m.Image()
	assert.ErrorIs(t, err, clipboard.ErrFormatUnavailable)
}

func TestImage_RoundTrip(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	m := newManager(backend)

	img, err := imagedata.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, img.SetPixel(2, 1, colorref.RGB(1, 2, 3)))
	img.ForceOpaque()

	require.NoError(t, m.SetImage(img))
	assert.True(t, m.HasImage())
	assert.False(t, m.HasText(), "setting an image empties the clipboard first")

	got, err := m.Image()
	require.NoError(t, err)
	assert.Equal(t, img.Pix, got.Pix)
}

func TestSetImage_Invalid(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	m := newManager(backend)

	err := m.SetImage(&imagedata.ImageData{Width: 1, Height: 1})
	assert.ErrorIs(t, err, imagedata.ErrCorrupt)
	assert.Zero(t, backend.opens)
}

func TestOpen_Retries(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.busyFor = 3
	m := newManager(backend)

	require.NoError(t, m.SetText("x"))
	assert.Equal(t, 4, backend.opens)
}

func TestOpen_GivesUp(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.busyFor = 100
	m := newManager(backend)

	err := m.Clear()
	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 5, backend.opens)
	assert.Zero(t, backend.closes, "a clipboard that never opened is not closed")
	assert.Equal(t, 1, backend.released)
}

func TestClear(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	m := newManager(backend)

	require.NoError(t, m.SetText("x"))
	require.NoError(t, m.Clear())
	assert.False(t, m.HasText())
}

func TestCloseErrorIsReported(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.closeErr = testutil.ErrMock
	m := newManager(backend)

	assert.ErrorIs(t, m.SetText("x"), testutil.ErrMock)
}

func TestOwnerWindowError(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.ownerErr = testutil.ErrMock
	m := newManager(backend)

	assert.ErrorIs(t, m.Clear(), testutil.ErrMock)
	assert.Zero(t, backend.opens)
}
