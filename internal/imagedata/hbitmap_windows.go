//go:build windows

package imagedata

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Norgate-AV/winutilz/internal/win32"
)

// FromHBITMAP copies a GDI bitmap into a new top-down BGRA image.
func FromHBITMAP(bitmap windows.Handle) (*ImageData, error) {
	if bitmap == 0 {
		return nil, fmt.Errorf("FromHBITMAP: nil bitmap")
	}

	bm, err := win32.GetBitmap(bitmap)
	if err != nil {
		return nil, err
	}

	height := bm.BmHeight
	if height < 0 {
		height = -height
	}

	d, err := New(int(bm.BmWidth), int(height))
	if err != nil {
		return nil, err
	}

	dc, err := win32.GetDC(0)
	if err != nil {
		return nil, err
	}
	defer win32.ReleaseDC(0, dc)

	bmi := win32.TopDown32(int32(d.Width), int32(d.Height))
	if err := win32.GetDIBits(dc, bitmap, uint32(d.Height), d.Pix, &bmi); err != nil {
		return nil, err
	}

	return d, nil
}

// HBITMAP creates a top-down 32bpp DIB section holding a copy of the image.
// The caller owns the handle and must release it with DeleteObject.
func (d *ImageData) HBITMAP() (windows.Handle, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	dc, err := win32.GetDC(0)
	if err != nil {
		return 0, err
	}
	defer win32.ReleaseDC(0, dc)

	bmi := win32.TopDown32(int32(d.Width), int32(d.Height))

	bitmap, bits, err := win32.CreateDIBSection(dc, &bmi)
	if err != nil {
		return 0, err
	}

	copy(unsafe.Slice((*byte)(bits), len(d.Pix)), d.Pix)

	return bitmap, nil
}
