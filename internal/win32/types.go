//go:build windows

package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r RECT) Width() int32  { return r.Right - r.Left }
func (r RECT) Height() int32 { return r.Bottom - r.Top }

// SHELLEXECUTEINFO is SHELLEXECUTEINFOW.
type SHELLEXECUTEINFO struct {
	CbSize       uint32
	FMask        uint32
	Hwnd         uintptr
	LpVerb       *uint16
	LpFile       *uint16
	LpParameters *uint16
	LpDirectory  *uint16
	NShow        int32
	HInstApp     uintptr
	LpIDList     uintptr
	LpClass      *uint16
	HkeyClass    uintptr
	DwHotKey     uint32
	HIcon        uintptr
	HProcess     windows.Handle
}

type MONITORINFO struct {
	CbSize    uint32
	RcMonitor RECT
	RcWork    RECT
	DwFlags   uint32
}

type BITMAP struct {
	BmType       int32
	BmWidth      int32
	BmHeight     int32
	BmWidthBytes int32
	BmPlanes     uint16
	BmBitsPixel  uint16
	BmBits       uintptr
}

type BITMAPINFOHEADER struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// BITMAPINFO with a single (unused) color table entry, enough for 32bpp BI_RGB.
type BITMAPINFO struct {
	BmiHeader BITMAPINFOHEADER
	BmiColors [1]uint32
}

// TopDown32 returns a BITMAPINFO describing a top-down 32bpp BI_RGB bitmap.
func TopDown32(width, height int32) BITMAPINFO {
	return BITMAPINFO{
		BmiHeader: BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(BITMAPINFOHEADER{})),
			BiWidth:       width,
			BiHeight:      -height,
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: BI_RGB,
			BiSizeImage:   uint32(width) * uint32(height) * 4,
		},
	}
}

// SYSTEM_POWER_CAPABILITIES keeps the leading sleep state flags; the rest of
// the structure is opaque padding.
type SYSTEM_POWER_CAPABILITIES struct {
	PowerButtonPresent byte
	SleepButtonPresent byte
	LidPresent         byte
	SystemS1           byte
	SystemS2           byte
	SystemS3           byte
	SystemS4           byte
	SystemS5           byte
	_                  [68]byte
}
