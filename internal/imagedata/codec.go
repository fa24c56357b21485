package imagedata

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/Norgate-AV/winutilz/internal/envpath"
)

// Format selects the file container for Encode and SaveFile.
type Format int

const (
	BMP Format = iota
	PNG
	JPEG
)

// ErrUnknownFormat is returned for unrecognised format names or extensions.
var ErrUnknownFormat = errors.New("unknown image format")

// DefaultJPEGQuality matches the encoder default.
const DefaultJPEGQuality = jpeg.DefaultQuality

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extension returns the conventional file extension, with the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return ".jpg"
	}

	return "." + f.String()
}

// ParseFormat accepts bmp, png, jpeg or jpg, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "bmp", "dib":
		return BMP, nil
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// EncodeOptions tunes Encode. A nil pointer means defaults.
type EncodeOptions struct {
	// JPEGQuality is 1-100; 0 means DefaultJPEGQuality.
	JPEGQuality int
}

// Encode writes the image in the given format.
func (d *ImageData) Encode(w io.Writer, f Format, opts *EncodeOptions) error {
	if err := d.Validate(); err != nil {
		return err
	}

	img := d.NRGBA()

	switch f {
	case BMP:
		return bmp.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		quality := DefaultJPEGQuality
		if opts != nil && opts.JPEGQuality > 0 {
			quality = opts.JPEGQuality
		}

		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Decode reads a BMP, PNG or JPEG image and reports which it was.
func Decode(r io.Reader) (*ImageData, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("decode image: %w", err)
	}

	f, err := ParseFormat(name)
	if err != nil {
		return nil, 0, err
	}

	d, err := FromImage(img)
	if err != nil {
		return nil, 0, err
	}

	return d, f, nil
}

// SaveFile encodes the image to path after expanding %VAR% references.
// The file is created or truncated.
func (d *ImageData) SaveFile(path string, f Format, opts *EncodeOptions) (err error) {
	path = envpath.Expand(path)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := d.Encode(file, f, opts); err != nil {
		return fmt.Errorf("encode %s as %v: %w", path, f, err)
	}

	return nil
}

// LoadFile decodes the image at path after expanding %VAR% references.
func LoadFile(path string) (*ImageData, error) {
	path = envpath.Expand(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	d, _, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
