package imagedata_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/colorref"
	"github.com/Norgate-AV/winutilz/internal/imagedata"
)

func opaqueGradient(t *testing.T, w, h int) *imagedata.ImageData {
	t.Helper()

	d, err := imagedata.New(w, h)
	require.NoError(t, err)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.NoError(t, d.SetPixel(x, y, colorref.RGB(uint8(x*40), uint8(y*40), 0x80)))
		}
	}

	return d
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want imagedata.Format
	}{
		{"bmp", imagedata.BMP},
		{".DIB", imagedata.BMP},
		{"png", imagedata.PNG},
		{"JPG", imagedata.JPEG},
		{"jpeg", imagedata.JPEG},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := imagedata.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := imagedata.ParseFormat("gif")
	assert.ErrorIs(t, err, imagedata.ErrUnknownFormat)

	f, err := imagedata.FormatFromPath(`C:\Users\me\shot.png`)
	require.NoError(t, err)
	assert.Equal(t, imagedata.PNG, f)
	assert.Equal(t, ".jpg", imagedata.JPEG.Extension())
	assert.Equal(t, ".bmp", imagedata.BMP.Extension())
}

func TestEncodeDecode_Lossless(t *testing.T) {
	t.Parallel()

	for _, f := range []imagedata.Format{imagedata.PNG, imagedata.BMP} {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()

			src := opaqueGradient(t, 5, 3)

			var buf bytes.Buffer
			require.NoError(t, src.Encode(&buf, f, nil))

			got, format, err := imagedata.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, f, format)
			assert.Equal(t, src.Width, got.Width)
			assert.Equal(t, src.Height, got.Height)
			assert.Equal(t, src.Pix, got.Pix)
		})
	}
}

func TestEncodeDecode_PNGKeepsAlpha(t *testing.T) {
	t.Parallel()

	src, err := imagedata.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, src.SetPixel(0, 0, colorref.RGBA(10, 20, 30, 128)))

	var buf bytes.Buffer
	require.NoError(t, src.Encode(&buf, imagedata.PNG, nil))

	got, _, err := imagedata.Decode(&buf)
	require.NoError(t, err)

	c, err := got.Pixel(0, 0)
	require.NoError(t, err)
	assert.Equal(t, colorref.RGBA(10, 20, 30, 128), c)
}

func TestEncode_JPEG(t *testing.T) {
	t.Parallel()

	src := opaqueGradient(t, 16, 8)

	var buf bytes.Buffer
	require.NoError(t, src.Encode(&buf, imagedata.JPEG, &imagedata.EncodeOptions{JPEGQuality: 95}))

	got, format, err := imagedata.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, imagedata.JPEG, format)
	assert.Equal(t, 16, got.Width)
	assert.Equal(t, 8, got.Height)
}

func TestEncode_RejectsCorrupt(t *testing.T) {
	t.Parallel()

	bad := &imagedata.ImageData{Width: 2, Height: 2, Pix: []byte{1, 2, 3}}
	assert.ErrorIs(t, bad.Encode(&bytes.Buffer{}, imagedata.PNG, nil), imagedata.ErrCorrupt)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	_, _, err := imagedata.Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSaveLoadFile_ExpandsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINUTILZ_TEST_DIR", dir)

	src := opaqueGradient(t, 4, 4)
	require.NoError(t, src.SaveFile("%WINUTILZ_TEST_DIR%/out.png", imagedata.PNG, nil))
	assert.FileExists(t, filepath.Join(dir, "out.png"))

	got, err := imagedata.LoadFile(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	assert.Equal(t, src.Pix, got.Pix)

	_, err = imagedata.LoadFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestMarshalDIB_Layout(t *testing.T) {
	t.Parallel()

	src := opaqueGradient(t, 3, 2)

	data, err := src.MarshalDIB()
	require.NoError(t, err)
	require.Len(t, data, imagedata.BitmapInfoHeaderSize+3*2*4)

	var hdr imagedata.BitmapInfoHeader
	require.NoError(t, binary.Read(bytes.NewReader(data), binary.LittleEndian, &hdr))
	assert.Equal(t, uint32(40), hdr.Size)
	assert.Equal(t, int32(3), hdr.Width)
	assert.Equal(t, int32(-2), hdr.Height)
	assert.Equal(t, uint16(1), hdr.Planes)
	assert.Equal(t, uint16(32), hdr.BitCount)
	assert.Equal(t, uint32(0), hdr.Compression)
	assert.Equal(t, uint32(24), hdr.SizeImage)
	assert.Equal(t, src.Pix, data[40:])

	got, err := imagedata.ParseDIB(data)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, got.Pix)
}

func dibHeader(w, h int32, bpp uint16, compression uint32) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, imagedata.BitmapInfoHeader{
		Size:        40,
		Width:       w,
		Height:      h,
		Planes:      1,
		BitCount:    bpp,
		Compression: compression,
	})

	return buf.Bytes()
}

func TestParseDIB_BottomUp24(t *testing.T) {
	t.Parallel()

	// 1x2, rows padded from 3 to 4 bytes, last row first.
	data := dibHeader(1, 2, 24, 0)
	data = append(data, 0x01, 0x02, 0x03, 0x00) // bottom row
	data = append(data, 0x0A, 0x0B, 0x0C, 0x00) // top row

	d, err := imagedata.ParseDIB(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x0B, 0x0C, 0xFF, 0x01, 0x02, 0x03, 0xFF}, d.Pix)
}

func TestParseDIB_ZeroAlphaBecomesOpaque(t *testing.T) {
	t.Parallel()

	data := dibHeader(2, -1, 32, 0)
	data = append(data, 1, 2, 3, 0, 4, 5, 6, 0)

	d, err := imagedata.ParseDIB(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 0xFF, 4, 5, 6, 0xFF}, d.Pix)
}

func TestParseDIB_KeepsRealAlpha(t *testing.T) {
	t.Parallel()

	data := dibHeader(2, -1, 32, 0)
	data = append(data, 1, 2, 3, 0, 4, 5, 6, 0x80)

	d, err := imagedata.ParseDIB(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 0, 4, 5, 6, 0x80}, d.Pix)
}

func TestParseDIB_Bitfields(t *testing.T) {
	t.Parallel()

	data := dibHeader(1, -1, 32, 3)
	masks := make([]byte, 12)
	binary.LittleEndian.PutUint32(masks[0:], 0x00FF0000)
	binary.LittleEndian.PutUint32(masks[4:], 0x0000FF00)
	binary.LittleEndian.PutUint32(masks[8:], 0x000000FF)
	data = append(data, masks...)
	data = append(data, 9, 8, 7, 0xFF)

	d, err := imagedata.ParseDIB(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8, 7, 0xFF}, d.Pix)

	binary.LittleEndian.PutUint32(data[40:], 0x0000F800)
	_, err = imagedata.ParseDIB(data)
	assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB)
}

func TestParseDIB_Rejects(t *testing.T) {
	t.Parallel()

	_, err := imagedata.ParseDIB([]byte{1, 2, 3})
	assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB)

	truncated := append(dibHeader(4, 4, 32, 0), 0, 0, 0, 0)
	_, err = imagedata.ParseDIB(truncated)
	assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB)

	_, err = imagedata.ParseDIB(dibHeader(4, 4, 8, 0))
	assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB)

	_, err = imagedata.ParseDIB(dibHeader(0, 4, 32, 0))
	assert.ErrorIs(t, err, imagedata.ErrInvalidDimensions)
}

func TestParseDIB_HugeDimensionsDoNotFit(t *testing.T) {
	t.Parallel()

	for _, size := range [][2]int32{
		{0x7FFFFFFF, 0x7FFFFFFF},
		{0x7FFFFFFF, -0x7FFFFFFF},
		{0x40000000, 0x40000000},
		{1, 0x7FFFFFFF},
	} {
		data := append(dibHeader(size[0], size[1], 32, 0), make([]byte, 24)...)

		assert.NotPanics(t, func() {
			_, err := imagedata.ParseDIB(data)
			assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB, "%dx%d", size[0], size[1])
		})
	}
}

func TestParseDIB_PaletteBeyondData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, imagedata.BitmapInfoHeader{
		Size:     40,
		Width:    1,
		Height:   1,
		Planes:   1,
		BitCount: 32,
		ClrUsed:  0xFFFFFFFF,
	}))

	_, err := imagedata.ParseDIB(append(buf.Bytes(), 0, 0, 0, 0))
	assert.ErrorIs(t, err, imagedata.ErrUnsupportedDIB)
}
