package imagedata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnsupportedDIB is returned for DIB layouts ParseDIB does not handle.
var ErrUnsupportedDIB = errors.New("unsupported DIB")

// BitmapInfoHeader mirrors BITMAPINFOHEADER.
type BitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// BitmapInfoHeaderSize is sizeof(BITMAPINFOHEADER).
const BitmapInfoHeaderSize = 40

const (
	biRGB       = 0
	biBitfields = 3
)

// MarshalDIB returns the image as a packed DIB (CF_DIB): a top-down 32bpp
// BI_RGB header followed by the BGRA pixels.
func (d *ImageData) MarshalDIB() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	hdr := BitmapInfoHeader{
		Size:        BitmapInfoHeaderSize,
		Width:       int32(d.Width),
		Height:      -int32(d.Height),
		Planes:      1,
		BitCount:    32,
		Compression: biRGB,
		SizeImage:   uint32(len(d.Pix)),
	}

	buf := bytes.NewBuffer(make([]byte, 0, BitmapInfoHeaderSize+len(d.Pix)))
	if err := binary.Write(buf, binary.LittleEndian, hdr); err != nil {
		return nil, err
	}

	buf.Write(d.Pix)

	return buf.Bytes(), nil
}

// ParseDIB decodes a packed DIB. 32bpp BI_RGB, 32bpp BI_BITFIELDS with the
// standard masks, and 24bpp BI_RGB are supported, stored either top-down or
// bottom-up. A 32bpp image whose alpha channel is all zero is made opaque.
func ParseDIB(data []byte) (*ImageData, error) {
	if len(data) < BitmapInfoHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a header", ErrUnsupportedDIB, len(data))
	}

	var hdr BitmapInfoHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDIB, err)
	}

	if hdr.Size < BitmapInfoHeaderSize {
		return nil, fmt.Errorf("%w: header size %d", ErrUnsupportedDIB, hdr.Size)
	}

	width := int(hdr.Width)
	height := int(hdr.Height)
	topDown := height < 0
	if topDown {
		height = -height
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	offset := int(hdr.Size)

	switch {
	case hdr.BitCount == 32 && hdr.Compression == biRGB:
	case hdr.BitCount == 24 && hdr.Compression == biRGB:
	case hdr.BitCount == 32 && hdr.Compression == biBitfields:
		if len(data) < BitmapInfoHeaderSize+12 {
			return nil, fmt.Errorf("%w: missing color masks", ErrUnsupportedDIB)
		}

		r := binary.LittleEndian.Uint32(data[40:])
		g := binary.LittleEndian.Uint32(data[44:])
		b := binary.LittleEndian.Uint32(data[48:])
		if r != 0x00FF0000 || g != 0x0000FF00 || b != 0x000000FF {
			return nil, fmt.Errorf("%w: color masks %08x/%08x/%08x", ErrUnsupportedDIB, r, g, b)
		}

		// A plain BITMAPINFOHEADER is followed by the three masks; V4/V5
		// headers carry them inside.
		if hdr.Size == BitmapInfoHeaderSize {
			offset += 12
		}
	default:
		return nil, fmt.Errorf("%w: %d bpp, compression %d", ErrUnsupportedDIB, hdr.BitCount, hdr.Compression)
	}

	if hdr.ClrUsed > uint32(len(data))/4 {
		return nil, fmt.Errorf("%w: %d palette entries", ErrUnsupportedDIB, hdr.ClrUsed)
	}

	offset += int(hdr.ClrUsed) * 4

	if offset > len(data) {
		return nil, fmt.Errorf("%w: pixel offset %d past end of %d bytes", ErrUnsupportedDIB, offset, len(data))
	}

	bpp := int(hdr.BitCount) / 8
	available := len(data) - offset

	// Bound each factor by the bytes present before multiplying.
	if width > available/bpp {
		return nil, fmt.Errorf("%w: %dx%d does not fit in %d bytes", ErrUnsupportedDIB, width, height, available)
	}

	stride := (width*bpp + 3) &^ 3
	if stride > available/height {
		return nil, fmt.Errorf("%w: %dx%d does not fit in %d bytes", ErrUnsupportedDIB, width, height, available)
	}

	d, err := New(width, height)
	if err != nil {
		return nil, err
	}

	pixels := data[offset:]
	for y := 0; y < height; y++ {
		srcY := y
		if !topDown {
			srcY = height - 1 - y
		}

		src := pixels[srcY*stride:]
		dst := d.Pix[y*width*BytesPerPixel:]

		if bpp == 4 {
			copy(dst[:width*BytesPerPixel], src[:width*BytesPerPixel])
			continue
		}

		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xFF
		}
	}

	if bpp == 4 && d.allTransparent() {
		d.ForceOpaque()
	}

	return d, nil
}
