// Package imagedata implements the BGRA pixel buffer shared by capture,
// clipboard and wallpaper, with codecs for BMP, PNG and JPEG.
package imagedata

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/Norgate-AV/winutilz/internal/colorref"
)

// BytesPerPixel is fixed: blue, green, red, alpha.
const BytesPerPixel = 4

// MaxPixelBytes caps the size of a pixel buffer at 1 GiB.
const MaxPixelBytes = 1 << 30

var (
	// ErrInvalidDimensions is returned for zero or negative sizes.
	ErrInvalidDimensions = errors.New("image dimensions must be positive")

	// ErrOutOfBounds is returned when a pixel coordinate is outside the image.
	ErrOutOfBounds = errors.New("pixel coordinate out of bounds")

	// ErrCorrupt is returned when Pix does not match Width*Height*4.
	ErrCorrupt = errors.New("pixel buffer does not match image dimensions")
)

// ImageData is a top-down BGRA bitmap. len(Pix) is always Width*Height*4.
type ImageData struct {
	Width  int
	Height int
	Pix    []byte
}

// New returns a zeroed (fully transparent black) image.
func New(width, height int) (*ImageData, error) {
	if width <= 0 || height <= 0 || width > MaxPixelBytes/BytesPerPixel/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}, nil
}

// Validate checks the buffer length against the dimensions.
func (d *ImageData) Validate() error {
	if d == nil {
		return ErrCorrupt
	}

	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}

	if len(d.Pix) != d.Width*d.Height*BytesPerPixel {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrCorrupt, d.Width, d.Height, len(d.Pix))
	}

	return nil
}

func (d *ImageData) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, d.Width, d.Height)
	}

	return (y*d.Width + x) * BytesPerPixel, nil
}

// SetPixel stores c at (x, y).
func (d *ImageData) SetPixel(x, y int, c colorref.ColorRef) error {
	i, err := d.offset(x, y)
	if err != nil {
		return err
	}

	d.Pix[i+0] = c.B()
	d.Pix[i+1] = c.G()
	d.Pix[i+2] = c.R()
	d.Pix[i+3] = c.A()

	return nil
}

// Pixel returns the color at (x, y).
func (d *ImageData) Pixel(x, y int) (colorref.ColorRef, error) {
	i, err := d.offset(x, y)
	if err != nil {
		return 0, err
	}

	return colorref.RGBA(d.Pix[i+2], d.Pix[i+1], d.Pix[i+0], d.Pix[i+3]), nil
}

// Clone returns a deep copy.
func (d *ImageData) Clone() *ImageData {
	out := &ImageData{Width: d.Width, Height: d.Height, Pix: make([]byte, len(d.Pix))}
	copy(out.Pix, d.Pix)
	return out
}

// ForceOpaque sets every alpha byte to 0xFF.
func (d *ImageData) ForceOpaque() {
	for i := 3; i < len(d.Pix); i += BytesPerPixel {
		d.Pix[i] = 0xFF
	}
}

// allTransparent reports whether every alpha byte is zero, which is how
// GDI leaves 32bpp bitmaps that never carried alpha.
func (d *ImageData) allTransparent() bool {
	for i := 3; i < len(d.Pix); i += BytesPerPixel {
		if d.Pix[i] != 0 {
			return false
		}
	}

	return true
}

// ColorModel implements image.Image.
func (d *ImageData) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (d *ImageData) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width, d.Height)
}

// At implements image.Image.
func (d *ImageData) At(x, y int) color.Color {
	i, err := d.offset(x, y)
	if err != nil {
		return color.NRGBA{}
	}

	return color.NRGBA{R: d.Pix[i+2], G: d.Pix[i+1], B: d.Pix[i+0], A: d.Pix[i+3]}
}

// NRGBA converts to a Go RGBA-ordered image.
func (d *ImageData) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(d.Bounds())

	for i := 0; i < len(d.Pix); i += BytesPerPixel {
		img.Pix[i+0] = d.Pix[i+2]
		img.Pix[i+1] = d.Pix[i+1]
		img.Pix[i+2] = d.Pix[i+0]
		img.Pix[i+3] = d.Pix[i+3]
	}

	return img
}

// FromImage converts any Go image to BGRA.
func FromImage(img image.Image) (*ImageData, error) {
	b := img.Bounds()

	d, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < d.Height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]

			for x := 0; x < d.Width; x++ {
				s := x * 4
				o := (y*d.Width + x) * BytesPerPixel
				d.Pix[o+0] = row[s+2]
				d.Pix[o+1] = row[s+1]
				d.Pix[o+2] = row[s+0]
				d.Pix[o+3] = row[s+3]
			}
		}

		return d, nil
	}

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			o := (y*d.Width + x) * BytesPerPixel
			d.Pix[o+0] = c.B
			d.Pix[o+1] = c.G
			d.Pix[o+2] = c.R
			d.Pix[o+3] = c.A
		}
	}

	return d, nil
}

var bayer4x4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Dither reduces the image to black and white with 4x4 ordered dithering.
// The result is opaque.
func (d *ImageData) Dither() {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			o := (y*d.Width + x) * BytesPerPixel

			lum := 0.299*float64(d.Pix[o+2]) + 0.587*float64(d.Pix[o+1]) + 0.114*float64(d.Pix[o+0])
			threshold := float64(bayer4x4[y%4][x%4]) * 255.0 / 16.0

			var v byte
			if lum > threshold {
				v = 0xFF
			}

			d.Pix[o+0], d.Pix[o+1], d.Pix[o+2], d.Pix[o+3] = v, v, v, 0xFF
		}
	}
}
